package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func execRoot(t *testing.T, args ...string) string {
	t.Helper()
	logger = zap.NewNop()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputPath = ""
		verbose = false
	})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func TestRootNoArgsPrintsUsageWithoutError(t *testing.T) {
	out := execRoot(t)
	if !strings.Contains(out, "codedump <directory>") {
		t.Fatalf("expected usage output, got %q", out)
	}
}

func TestRootTooManyArgsPrintsUsageWithoutError(t *testing.T) {
	// The extra arguments are never treated as paths, so nothing is traversed.
	out := execRoot(t, "/does/not/exist", "/neither/does/this")
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage output, got %q", out)
	}
	if strings.Contains(out, "Dump success") {
		t.Fatalf("dump must not run on misuse, got %q", out)
	}
}

func TestRootDumpsToOutputFile(t *testing.T) {
	color.NoColor = true

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "logo.png"), []byte{0x89, 0x50}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	outPath := filepath.Join(t.TempDir(), "dump.txt")

	out := execRoot(t, root, "--output", outPath)

	if !strings.Contains(out, "Skipped 1 binary/unreadable files.") {
		t.Fatalf("missing summary line, got %q", out)
	}
	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(written) != "# file a.txt\nhello\n" {
		t.Fatalf("output file = %q", written)
	}
}

func TestVersionCommandShort(t *testing.T) {
	out := execRoot(t, "version", "--short")
	if strings.TrimSpace(out) != "dev" {
		t.Fatalf("version --short = %q, want dev", out)
	}
}
