// Package types holds configuration types for bento.yaml.
package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults. They mirror the constants the tool
// shipped with before bento.yaml existed.
const (
	DefaultPython      = "python3"
	DefaultInterpreter = "/usr/bin/env python3"
	DefaultStagingDir  = ".bento-staging"
	DefaultUnwrapGlob  = "lib/python*/site-packages/*"

	// EntryFileName is the filename the zipapp loader executes inside the
	// archive. The entry source file is always copied under this name.
	EntryFileName = "__main__.py"
)

// Config represents the top-level bento.yaml configuration.
type Config struct {
	AppID        string   `yaml:"app_id"`
	Version      string   `yaml:"version"`
	Entry        string   `yaml:"entry"`
	Output       string   `yaml:"output,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Python       string   `yaml:"python,omitempty"`
	Installer    string   `yaml:"installer,omitempty"`
	Archiver     string   `yaml:"archiver,omitempty"`
	Interpreter  string   `yaml:"interpreter,omitempty"`
	IndexURL     string   `yaml:"index_url,omitempty"`
	UnwrapGlob   string   `yaml:"unwrap_glob,omitempty"`
	StagingDir   string   `yaml:"staging_dir,omitempty"`
	StrictMerge  bool     `yaml:"strict_merge,omitempty"`
	Compress     *bool    `yaml:"compress,omitempty"`
}

// ParseConfig parses raw YAML bytes into a Config and checks required fields.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing bento config: %w", err)
	}

	if cfg.AppID == "" {
		return nil, fmt.Errorf("bento config: app_id is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("bento config: version is required")
	}
	if cfg.Entry == "" {
		return nil, fmt.Errorf("bento config: entry is required")
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills optional fields that were left empty.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = c.AppID + ".pyz"
	}
	if c.Python == "" {
		c.Python = DefaultPython
	}
	if c.Interpreter == "" {
		c.Interpreter = DefaultInterpreter
	}
	if c.UnwrapGlob == "" {
		c.UnwrapGlob = DefaultUnwrapGlob
	}
	if c.StagingDir == "" {
		c.StagingDir = DefaultStagingDir
	}
	if c.Compress == nil {
		t := true
		c.Compress = &t
	}
}

// CompressEnabled reports whether archive entries should be deflated.
func (c *Config) CompressEnabled() bool {
	return c.Compress == nil || *c.Compress
}

// Marshal renders the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling bento config: %w", err)
	}
	return out, nil
}
