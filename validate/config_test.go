package validate

import (
	"strings"
	"testing"

	"github.com/initializ/bento/types"
)

func validConfig() *types.Config {
	cfg := &types.Config{
		AppID:        "kattis2canvas",
		Version:      "0.1.0",
		Entry:        "main.py",
		Dependencies: []string{"click", "requests", "beautifulsoup4", "canvasapi"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidateConfig_Valid(t *testing.T) {
	r := ValidateConfig(validConfig())
	if !r.IsValid() {
		t.Fatalf("IsValid() = false, errors: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", r.Warnings)
	}
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Config)
		want   string
	}{
		{"bad app_id", func(c *types.Config) { c.AppID = "My App" }, "app_id"},
		{"bad version", func(c *types.Config) { c.Version = "1.0" }, "semver"},
		{"empty dependency", func(c *types.Config) { c.Dependencies = []string{""} }, "name is empty"},
		{"bad dependency", func(c *types.Config) { c.Dependencies = []string{"-click-"} }, "not a valid package name"},
		{"unknown installer", func(c *types.Config) { c.Installer = "conda" }, "unknown installer"},
		{"unknown archiver", func(c *types.Config) { c.Archiver = "tar" }, "unknown archiver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			r := ValidateConfig(cfg)
			if r.IsValid() {
				t.Fatal("IsValid() = true, want errors")
			}
			found := false
			for _, e := range r.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v missing substring %q", r.Errors, tt.want)
			}
		})
	}
}

func TestValidateConfig_Warnings(t *testing.T) {
	cfg := validConfig()
	cfg.Dependencies = nil
	cfg.Output = "out.zip"

	r := ValidateConfig(cfg)
	if !r.IsValid() {
		t.Fatalf("IsValid() = false, errors: %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 (no deps, odd output suffix)", r.Warnings)
	}
}

func TestValidateConfig_DuplicateDependency(t *testing.T) {
	cfg := validConfig()
	cfg.Dependencies = []string{"click", "Click"}

	r := ValidateConfig(cfg)
	if !r.IsValid() {
		t.Fatalf("IsValid() = false, errors: %v", r.Errors)
	}
	if len(r.Warnings) == 0 || !strings.Contains(r.Warnings[0], "listed more than once") {
		t.Errorf("Warnings = %v, want duplicate warning", r.Warnings)
	}
}
