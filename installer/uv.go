package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// UvInstaller installs packages using the uv CLI.
type UvInstaller struct{}

func (u *UvInstaller) Name() string { return "uv" }

func (u *UvInstaller) Available() bool {
	return exec.Command("uv", "--version").Run() == nil
}

func (u *UvInstaller) Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	if opts.TargetDir == "" {
		return nil, fmt.Errorf("uv install: target directory is required")
	}
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("uv install: no packages given")
	}

	args := []string{"pip", "install", "--prefix", opts.TargetDir}
	if opts.Python != "" {
		args = append(args, "--python", opts.Python)
	}
	if opts.IndexURL != "" {
		args = append(args, "--index-url", opts.IndexURL)
	}
	args = append(args, opts.Packages...)

	cmd := exec.CommandContext(ctx, "uv", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("uv install failed: %s: %w", stderr.String(), err)
	}

	return &InstallResult{
		TargetDir: opts.TargetDir,
		Packages:  opts.Packages,
		Output:    string(out),
	}, nil
}
