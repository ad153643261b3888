// Package validate checks bento configuration for errors and warnings.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/initializ/bento/types"
)

var (
	appIDPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

	// PEP 508 name: letters, digits, and interior ._- runs.
	packagePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

	knownInstallers = map[string]bool{"pip": true, "uv": true}
	knownArchivers  = map[string]bool{"zipapp": true, "zip": true}
)

// ValidationResult holds errors and warnings from config validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateConfig checks a Config for errors and warnings.
func ValidateConfig(cfg *types.Config) *ValidationResult {
	r := &ValidationResult{}

	if cfg.AppID == "" {
		r.Errors = append(r.Errors, "app_id is required")
	} else if !appIDPattern.MatchString(cfg.AppID) {
		r.Errors = append(r.Errors, fmt.Sprintf("app_id %q must match ^[a-z0-9-]+$", cfg.AppID))
	}

	if cfg.Version == "" {
		r.Errors = append(r.Errors, "version is required")
	} else if !semverPattern.MatchString(cfg.Version) {
		r.Errors = append(r.Errors, fmt.Sprintf("version %q is not valid semver", cfg.Version))
	}

	if cfg.Entry == "" {
		r.Errors = append(r.Errors, "entry is required")
	} else if filepath.Base(cfg.Entry) == types.EntryFileName {
		r.Warnings = append(r.Warnings, fmt.Sprintf("entry is already named %s; it will be copied as-is", types.EntryFileName))
	}

	for i, dep := range cfg.Dependencies {
		if dep == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("dependencies[%d]: name is empty", i))
		} else if !packagePattern.MatchString(dep) {
			r.Errors = append(r.Errors, fmt.Sprintf("dependencies[%d]: %q is not a valid package name", i, dep))
		}
	}
	if dup := firstDuplicate(cfg.Dependencies); dup != "" {
		r.Warnings = append(r.Warnings, fmt.Sprintf("dependency %q is listed more than once", dup))
	}

	if cfg.Installer != "" && !knownInstallers[cfg.Installer] {
		r.Errors = append(r.Errors, fmt.Sprintf("unknown installer %q (known: pip, uv)", cfg.Installer))
	}
	if cfg.Archiver != "" && !knownArchivers[cfg.Archiver] {
		r.Errors = append(r.Errors, fmt.Sprintf("unknown archiver %q (known: zipapp, zip)", cfg.Archiver))
	}

	if cfg.Output != "" && !strings.HasSuffix(cfg.Output, ".pyz") {
		r.Warnings = append(r.Warnings, fmt.Sprintf("output %q does not end in .pyz", cfg.Output))
	}
	if len(cfg.Dependencies) == 0 {
		r.Warnings = append(r.Warnings, "no dependencies declared; the archive will contain only the entry file")
	}

	return r
}

func firstDuplicate(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			return n
		}
		seen[key] = true
	}
	return ""
}
