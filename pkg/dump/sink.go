// File: pkg/dump/sink.go
package dump

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Sink receives the assembled dump. The clipboard is the default
// implementation; a file or stream writer substitutes for it in tests and
// when --output is given.
type Sink interface {
	Publish(text string) error
}

// ClipboardSink publishes the dump to the system clipboard.
type ClipboardSink struct{}

// Publish replaces the clipboard contents with text.
func (ClipboardSink) Publish(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// FileSink publishes the dump to a file, replacing any previous contents.
type FileSink struct {
	Path string
}

// Publish writes text to the sink's path.
func (s FileSink) Publish(text string) error {
	if err := os.WriteFile(s.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write dump file: %w", err)
	}
	return nil
}
