// File: pkg/dump/config.go
package dump

// Arguments holds the configuration options for a dump run.
type Arguments struct {
	Directory string // The directory tree to dump.
	Output    string // Optional file path; when set the dump is written here instead of the clipboard.
	Verbose   bool   // If true, enables detailed logging, including per-file skip information.
}

// Summary reports the outcome of a dump run.
type Summary struct {
	Files   int // Number of files whose content made it into the dump.
	Skipped int // Number of files excluded as binary or unreadable.
}
