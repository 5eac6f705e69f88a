// File: pkg/dump/dump.go
package dump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"codedump/pkg/ignore"

	"go.uber.org/zap"
)

// headerPrefix starts the label line before every file's content in the dump.
const headerPrefix = "# file "

// Execute resolves the sink from the arguments and runs the dump. With
// Output set the dump goes to that file, otherwise to the system clipboard.
func Execute(args Arguments, logger *zap.Logger) (Summary, error) {
	var sink Sink = ClipboardSink{}
	if args.Output != "" {
		sink = FileSink{Path: args.Output}
	}
	return Run(args, sink, logger)
}

// Run orchestrates the dump: load ignore patterns, collect candidate files,
// read and assemble their contents, and publish the result to the sink.
// Processing is strictly sequential; one file is open at a time.
func Run(args Arguments, sink Sink, logger *zap.Logger) (Summary, error) {
	parentDir, err := filepath.Abs(args.Directory)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Debug("Starting dump", zap.String("directory", parentDir))

	// An unreadable ignore file is a configuration error, not a per-file one.
	spec, err := ignore.Load(parentDir)
	if err != nil {
		logger.Error("Failed to load ignore patterns", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	candidates, skipped, err := CollectCandidates(parentDir, spec, logger, args.Verbose)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}

	var output []string
	files := 0

	for _, relPath := range candidates {
		fullPath := filepath.Join(parentDir, filepath.FromSlash(relPath))

		content, readErr := os.ReadFile(fullPath)
		switch {
		case readErr == nil && utf8.Valid(content):
			output = append(output, headerPrefix+relPath, string(content), "")
			files++
		case readErr == nil:
			// Undecodable content past the extension filter.
			skipped++
			if args.Verbose {
				logger.Debug("Skipping file with non-UTF-8 content", zap.String("file", relPath))
			}
		case isExpectedReadError(readErr, fullPath):
			skipped++
			if args.Verbose {
				logger.Debug("Skipping unreadable file", zap.String("file", relPath), zap.Error(readErr))
			}
		default:
			// Surface unexpected failures inline rather than aborting the run.
			logger.Warn("Unexpected error reading file", zap.String("file", relPath), zap.Error(readErr))
			output = append(output, headerPrefix+relPath, fmt.Sprintf("# Could not read %s: %v", relPath, readErr), "")
		}
	}

	text := strings.Join(output, "\n")
	if err := sink.Publish(text); err != nil {
		logger.Error("Failed to publish dump", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to publish dump: %w", err)
	}

	logger.Info("Dump completed",
		zap.Int("files", files),
		zap.Int("skipped", skipped),
		zap.Int("bytes", len(text)))
	return Summary{Files: files, Skipped: skipped}, nil
}

// isExpectedReadError reports whether a read failure belongs to the expected
// taxonomy: permission denied, or the path turning out to be a directory
// (a race with the filesystem). Anything else is surfaced inline by Run.
func isExpectedReadError(err error, path string) bool {
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return true
	}
	return false
}
