package archiver

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ZipArchiver packs a directory into an executable zip using archive/zip.
// It mirrors what `python -m zipapp` produces: an optional shebang line
// followed by a plain zip of the source tree, with the exec bit set.
type ZipArchiver struct{}

func (z *ZipArchiver) Name() string { return "zip" }

// Available always reports true; no external tooling is involved.
func (z *ZipArchiver) Available() bool { return true }

func (z *ZipArchiver) Archive(ctx context.Context, opts ArchiveOptions) (*ArchiveResult, error) {
	if opts.SourceDir == "" || opts.OutputPath == "" {
		return nil, fmt.Errorf("zip: source directory and output path are required")
	}

	out, err := os.OpenFile(opts.OutputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return nil, fmt.Errorf("zip: creating %s: %w", opts.OutputPath, err)
	}
	defer out.Close()

	if opts.Interpreter != "" {
		shebang := opts.Interpreter
		if !strings.HasPrefix(shebang, "#!") {
			shebang = "#!" + shebang
		}
		if _, err := io.WriteString(out, shebang+"\n"); err != nil {
			return nil, fmt.Errorf("zip: writing shebang: %w", err)
		}
	}

	zw := zip.NewWriter(out)
	method := zip.Store
	if opts.Compress {
		method = zip.Deflate
	}

	entries := 0
	walkErr := filepath.WalkDir(opts.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(opts.SourceDir, path)
		if err != nil {
			return err
		}

		hdr := &zip.FileHeader{
			Name:   filepath.ToSlash(rel),
			Method: method,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			return err
		}
		entries++
		return nil
	})
	if walkErr != nil {
		zw.Close()
		return nil, fmt.Errorf("zip: archiving %s: %w", opts.SourceDir, walkErr)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: finalizing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("zip: closing %s: %w", opts.OutputPath, err)
	}

	info, err := os.Stat(opts.OutputPath)
	if err != nil {
		return nil, err
	}

	return &ArchiveResult{
		OutputPath: opts.OutputPath,
		Entries:    entries,
		Size:       info.Size(),
	}, nil
}
