// Package ignore loads the root .gitignore file and compiles it into a
// matcher for relative paths.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileName is the ignore-pattern file looked up at the root of the dumped tree.
const FileName = ".gitignore"

// Spec is an immutable set of compiled ignore patterns. A nil *Spec is valid
// and matches nothing.
type Spec struct {
	matcher *gitignore.GitIgnore
}

// Load reads the ignore file at the top level of root and compiles it.
// A missing file yields a nil Spec. A file that exists but cannot be read,
// or whose content is not valid UTF-8, is a fatal configuration error.
func Load(root string) (*Spec, error) {
	path := filepath.Join(root, FileName)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("ignore file %s is not valid UTF-8 text", path)
	}

	lines := strings.Split(string(content), "\n")
	return &Spec{matcher: gitignore.CompileIgnoreLines(lines...)}, nil
}

// CompileLines builds a Spec directly from pattern lines.
func CompileLines(lines ...string) *Spec {
	return &Spec{matcher: gitignore.CompileIgnoreLines(lines...)}
}

// MatchesPath reports whether the given root-relative path is excluded by the
// compiled patterns. Comments, blank lines and negations follow standard
// gitignore semantics: the last matching pattern wins.
func (s *Spec) MatchesPath(relPath string) bool {
	if s == nil || s.matcher == nil {
		return false
	}
	return s.matcher.MatchesPath(filepath.ToSlash(relPath))
}
