package installer

import (
	"context"
	"testing"
)

func TestGet_KnownInstallers(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"pip", "pip"},
		{"uv", "uv"},
	}

	for _, tt := range tests {
		in := Get(tt.name, "python3")
		if in == nil {
			t.Errorf("Get(%q) returned nil", tt.name)
			continue
		}
		if in.Name() != tt.expected {
			t.Errorf("Get(%q).Name() = %q, want %q", tt.name, in.Name(), tt.expected)
		}
	}
}

func TestGet_UnknownInstaller(t *testing.T) {
	if in := Get("conda", "python3"); in != nil {
		t.Errorf("Get(\"conda\") = %v, want nil", in)
	}
}

func TestDetect_ReturnsInstallerOrNil(t *testing.T) {
	// Detect depends on what's installed on the host; assert only that a
	// returned installer has a known name.
	in := Detect("python3")
	if in != nil {
		name := in.Name()
		if name != "pip" && name != "uv" {
			t.Errorf("Detect() returned installer with unexpected name: %q", name)
		}
	}
}

func TestPipInstall_RejectsEmptyOptions(t *testing.T) {
	p := &PipInstaller{}
	if _, err := p.Install(context.Background(), InstallOptions{Packages: []string{"click"}}); err == nil {
		t.Error("Install() without target dir: error = nil, want error")
	}
	if _, err := p.Install(context.Background(), InstallOptions{TargetDir: t.TempDir()}); err == nil {
		t.Error("Install() without packages: error = nil, want error")
	}
}

func TestUvInstall_RejectsEmptyOptions(t *testing.T) {
	u := &UvInstaller{}
	if _, err := u.Install(context.Background(), InstallOptions{Packages: []string{"click"}}); err == nil {
		t.Error("Install() without target dir: error = nil, want error")
	}
	if _, err := u.Install(context.Background(), InstallOptions{TargetDir: t.TempDir()}); err == nil {
		t.Error("Install() without packages: error = nil, want error")
	}
}
