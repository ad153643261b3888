// Package installer provides dependency installation via pip or uv.
package installer

import "context"

// Installer is the interface for dependency installers.
type Installer interface {
	Install(ctx context.Context, opts InstallOptions) (*InstallResult, error)
	Available() bool
	Name() string
}

// InstallOptions configures a dependency installation.
type InstallOptions struct {
	// TargetDir is the prefix the installer writes under. Redirecting the
	// install target here is what keeps the host site-packages untouched.
	TargetDir string
	Packages  []string
	Python    string
	IndexURL  string
}

// InstallResult holds the result of a dependency installation.
type InstallResult struct {
	TargetDir string
	Packages  []string
	Output    string
}

// Detect returns the first available installer in order: pip, uv.
// Returns nil if no installer is available.
func Detect(python string) Installer {
	installers := []Installer{
		&PipInstaller{Python: python},
		&UvInstaller{},
	}
	for _, in := range installers {
		if in.Available() {
			return in
		}
	}
	return nil
}

// Get returns an installer by name, or nil if the name is unknown.
func Get(name, python string) Installer {
	switch name {
	case "pip":
		return &PipInstaller{Python: python}
	case "uv":
		return &UvInstaller{}
	default:
		return nil
	}
}
