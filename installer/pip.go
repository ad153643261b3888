package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/initializ/bento/types"
)

// PipInstaller installs packages using `python -m pip`.
type PipInstaller struct {
	// Python is the interpreter used to run pip. Defaults to python3.
	Python string
}

func (p *PipInstaller) Name() string { return "pip" }

func (p *PipInstaller) python() string {
	if p.Python != "" {
		return p.Python
	}
	return types.DefaultPython
}

func (p *PipInstaller) Available() bool {
	return exec.Command(p.python(), "-m", "pip", "--version").Run() == nil
}

func (p *PipInstaller) Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	if opts.TargetDir == "" {
		return nil, fmt.Errorf("pip install: target directory is required")
	}
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("pip install: no packages given")
	}

	python := opts.Python
	if python == "" {
		python = p.python()
	}

	args := []string{"-m", "pip", "install",
		"--prefix", opts.TargetDir,
		"--no-warn-script-location",
	}
	if opts.IndexURL != "" {
		args = append(args, "--index-url", opts.IndexURL)
	}
	args = append(args, opts.Packages...)

	cmd := exec.CommandContext(ctx, python, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pip install failed: %s: %w", stderr.String(), err)
	}

	return &InstallResult{
		TargetDir: opts.TargetDir,
		Packages:  opts.Packages,
		Output:    string(out),
	}, nil
}
