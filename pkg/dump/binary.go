// File: pkg/dump/binary.go
package dump

import (
	"path/filepath"
	"strings"
)

// BinaryExtensions is the static set of lowercase file extensions presumed to
// indicate non-text content. Files with these extensions are skipped without
// a decode attempt.
var BinaryExtensions = map[string]bool{
	// Images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".tiff": true, ".ico": true, ".webp": true, ".svg": true,
	// Audio/Video
	".mp3": true, ".mp4": true, ".wav": true, ".avi": true, ".mov": true,
	".flv": true, ".mkv": true, ".webm": true,
	// Archives
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true, ".bz2": true,
	// Executables
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	// Documents
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	// Compiled artifacts
	".class": true, ".pyc": true, ".o": true, ".obj": true,
	// Font files
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true, ".eot": true,
	// Lock files that can be large
	".lockb": true,
}

// hasBinaryExtension checks if the file has a known binary extension.
func hasBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return BinaryExtensions[ext]
}
