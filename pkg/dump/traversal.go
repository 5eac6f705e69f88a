// File: pkg/dump/traversal.go
package dump

import (
	"io/fs"
	"path/filepath"
	"strings"

	"codedump/pkg/ignore"

	"go.uber.org/zap"
)

// vcsDirPrefix marks version-control metadata directories whose whole subtree
// is pruned from traversal.
const vcsDirPrefix = ".git"

// CollectCandidates walks the tree rooted at parentDir and returns the
// candidate files for the dump: the
// root-relative paths of files that survive the ignore and binary-extension
// filters, plus the number of files excluded for having a binary extension.
//
// Ignored files are excluded silently: a user-authored exclusion is not a
// skip. Traversal order is filepath.WalkDir's lexical order, so repeated runs
// over an unchanged tree yield the same candidate sequence.
func CollectCandidates(parentDir string, spec *ignore.Spec, logger *zap.Logger, verbose bool) ([]string, int, error) {
	var candidates []string
	binarySkips := 0

	err := filepath.WalkDir(parentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip paths that cause errors
		}

		if d.IsDir() {
			if path != parentDir && strings.HasPrefix(d.Name(), vcsDirPrefix) {
				if verbose {
					logger.Debug("Pruning version-control directory", zap.String("directory", path))
				}
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(parentDir, path)
		if relErr != nil {
			logger.Warn("Failed to compute relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if spec.MatchesPath(relPath) {
			if verbose {
				logger.Debug("File matches ignore pattern", zap.String("file", relPath))
			}
			return nil
		}

		if hasBinaryExtension(relPath) {
			binarySkips++
			if verbose {
				logger.Debug("File has binary extension", zap.String("file", relPath), zap.String("extension", filepath.Ext(relPath)))
			}
			return nil
		}

		candidates = append(candidates, relPath)
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return nil, 0, err
	}

	logger.Debug("Completed file traversal",
		zap.Int("candidates", len(candidates)),
		zap.Int("binarySkips", binarySkips))
	return candidates, binarySkips, nil
}
