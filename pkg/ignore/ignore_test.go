package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"codedump/pkg/ignore"
)

func TestLoadMissingFileYieldsNilSpec(t *testing.T) {
	root := t.TempDir()

	spec, err := ignore.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec != nil {
		t.Fatalf("expected nil spec for missing ignore file, got %v", spec)
	}
	if spec.MatchesPath("anything.txt") {
		t.Fatal("nil spec must match nothing")
	}
}

func TestLoadCompilesPatternsFromRootIgnoreFile(t *testing.T) {
	root := t.TempDir()
	content := "# build artifacts\n*.log\nbuild/\n\n!important.log\n"
	if err := os.WriteFile(filepath.Join(root, ignore.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	spec, err := ignore.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec == nil {
		t.Fatal("expected compiled spec")
	}

	cases := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"nested/deep/trace.log", true},
		{"build/out.txt", true},
		{"important.log", false}, // re-included by the negation
		{"main.go", false},
	}
	for _, tc := range cases {
		if got := spec.MatchesPath(tc.path); got != tc.want {
			t.Errorf("MatchesPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestLoadRejectsNonUTF8IgnoreFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ignore.FileName), []byte{0xff, 0xfe, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	if _, err := ignore.Load(root); err == nil {
		t.Fatal("expected error for undecodable ignore file")
	}
}

func TestCompileLinesNegationOrder(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		path  string
		want  bool
	}{
		{"plain match", []string{"secret.txt"}, "secret.txt", true},
		{"no match", []string{"secret.txt"}, "public.txt", false},
		{"later negation wins", []string{"*.txt", "!keep.txt"}, "keep.txt", false},
		{"negation then re-ignore", []string{"*.txt", "!keep.txt", "keep.txt"}, "keep.txt", true},
		{"double star", []string{"**/node_modules/**"}, "a/node_modules/b/c.js", true},
		{"comment line inert", []string{"# secret.txt"}, "secret.txt", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := ignore.CompileLines(tc.lines...)
			if got := spec.MatchesPath(tc.path); got != tc.want {
				t.Errorf("MatchesPath(%q) with %v = %v, want %v", tc.path, tc.lines, got, tc.want)
			}
		})
	}
}
