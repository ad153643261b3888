// Package archiver produces executable zip archives from a bundle directory.
package archiver

import "context"

// Archiver is the interface for executable-archive writers.
type Archiver interface {
	Archive(ctx context.Context, opts ArchiveOptions) (*ArchiveResult, error)
	Available() bool
	Name() string
}

// ArchiveOptions configures an archive run.
type ArchiveOptions struct {
	SourceDir  string
	OutputPath string
	// Interpreter is written as the archive's shebang line, making the
	// artifact directly executable. Empty means no shebang.
	Interpreter string
	Compress    bool
	// Python is the interpreter used to run external archive tooling.
	Python string
}

// ArchiveResult holds the result of an archive run.
type ArchiveResult struct {
	OutputPath string
	Entries    int
	Size       int64
}

// Detect returns the first available archiver in order: zipapp, zip.
// The native zip archiver is always available, so Detect never returns nil.
func Detect(python string) Archiver {
	archivers := []Archiver{
		&ZipappArchiver{Python: python},
		&ZipArchiver{},
	}
	for _, a := range archivers {
		if a.Available() {
			return a
		}
	}
	return &ZipArchiver{}
}

// Get returns an archiver by name, or nil if the name is unknown.
func Get(name, python string) Archiver {
	switch name {
	case "zipapp":
		return &ZipappArchiver{Python: python}
	case "zip":
		return &ZipArchiver{}
	default:
		return nil
	}
}
