package archiver

import (
	"archive/zip"
	"fmt"
	"sort"
	"strings"

	"github.com/initializ/bento/types"
)

// Summary describes the contents of a built archive.
type Summary struct {
	HasEntryPoint bool
	TopLevelDirs  []string
	TopLevelFiles []string
	Entries       int
}

// Summarize opens an executable archive and reports its top-level layout.
// A shebang-prefixed archive opens fine: the zip reader locates the central
// directory from the end of the file.
func Summarize(path string) (*Summary, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer r.Close()

	s := &Summary{Entries: len(r.File)}
	dirs := make(map[string]bool)
	files := make(map[string]bool)

	for _, f := range r.File {
		name := strings.TrimPrefix(f.Name, "./")
		if i := strings.IndexByte(name, '/'); i >= 0 {
			dirs[name[:i]] = true
			continue
		}
		if name == types.EntryFileName {
			s.HasEntryPoint = true
		}
		if !f.FileInfo().IsDir() {
			files[name] = true
		}
	}

	for d := range dirs {
		s.TopLevelDirs = append(s.TopLevelDirs, d)
	}
	for f := range files {
		s.TopLevelFiles = append(s.TopLevelFiles, f)
	}
	sort.Strings(s.TopLevelDirs)
	sort.Strings(s.TopLevelFiles)

	return s, nil
}
