package archiver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/initializ/bento/types"
)

// ZipappArchiver packs a directory using `python -m zipapp`.
type ZipappArchiver struct {
	// Python is the interpreter used to run zipapp. Defaults to python3.
	Python string
}

func (z *ZipappArchiver) Name() string { return "zipapp" }

func (z *ZipappArchiver) python() string {
	if z.Python != "" {
		return z.Python
	}
	return types.DefaultPython
}

func (z *ZipappArchiver) Available() bool {
	return exec.Command(z.python(), "-c", "import zipapp").Run() == nil
}

func (z *ZipappArchiver) Archive(ctx context.Context, opts ArchiveOptions) (*ArchiveResult, error) {
	if opts.SourceDir == "" || opts.OutputPath == "" {
		return nil, fmt.Errorf("zipapp: source directory and output path are required")
	}

	python := opts.Python
	if python == "" {
		python = z.python()
	}

	args := []string{"-m", "zipapp", opts.SourceDir, "-o", opts.OutputPath}
	if opts.Interpreter != "" {
		args = append(args, "-p", opts.Interpreter)
	}
	if opts.Compress {
		args = append(args, "-c")
	}

	cmd := exec.CommandContext(ctx, python, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("zipapp failed: %s: %w", stderr.String(), err)
	}

	info, err := os.Stat(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("zipapp reported success but output is missing: %w", err)
	}

	return &ArchiveResult{
		OutputPath: opts.OutputPath,
		Size:       info.Size(),
	}, nil
}
