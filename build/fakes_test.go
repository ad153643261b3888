package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/installer"
)

// fakeInstaller lays out a pip-like install tree under the target prefix:
// lib/python3.12/site-packages/<pkg>/__init__.py per package.
type fakeInstaller struct {
	pythonDir string // defaults to python3.12
	calls     int
}

func (f *fakeInstaller) Name() string    { return "fake" }
func (f *fakeInstaller) Available() bool { return true }

func (f *fakeInstaller) Install(ctx context.Context, opts installer.InstallOptions) (*installer.InstallResult, error) {
	f.calls++
	pyDir := f.pythonDir
	if pyDir == "" {
		pyDir = "python3.12"
	}
	site := filepath.Join(opts.TargetDir, "lib", pyDir, "site-packages")
	for _, pkg := range opts.Packages {
		dir := filepath.Join(site, pkg)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, "__init__.py"), []byte(""), 0644); err != nil {
			return nil, err
		}
	}
	return &installer.InstallResult{TargetDir: opts.TargetDir, Packages: opts.Packages}, nil
}

// failInstaller always fails, standing in for an unresolvable package or a
// network error.
type failInstaller struct{}

func (f *failInstaller) Name() string    { return "fail" }
func (f *failInstaller) Available() bool { return true }

func (f *failInstaller) Install(ctx context.Context, opts installer.InstallOptions) (*installer.InstallResult, error) {
	return nil, errors.New("install failed: no matching distribution")
}

// failArchiver always fails, standing in for an unwritable output path.
type failArchiver struct{}

func (f *failArchiver) Name() string    { return "fail" }
func (f *failArchiver) Available() bool { return true }

func (f *failArchiver) Archive(ctx context.Context, opts archiver.ArchiveOptions) (*archiver.ArchiveResult, error) {
	return nil, errors.New("archive failed: permission denied")
}
