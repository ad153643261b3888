package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestBentoYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "bento.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing bento.yaml: %v", err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestBentoYAML(t, dir, `
app_id: kattis2canvas
version: 0.1.0
entry: main.py
dependencies:
  - click
  - requests
  - beautifulsoup4
  - canvasapi
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestBentoYAML(t, dir, `
app_id: INVALID ID
version: not-semver
entry: ""
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	if err := runValidate(nil, nil); err == nil {
		t.Error("runValidate() error = nil, want validation failure")
	}
}

func TestRunValidate_UnknownField(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestBentoYAML(t, dir, `
app_id: demo
version: 0.1.0
entry: main.py
requirements_txt: requirements.txt
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	if err := runValidate(nil, nil); err == nil {
		t.Error("runValidate() error = nil, want schema failure for unknown field")
	}
}
