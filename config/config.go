// Package config loads bento.yaml files from disk.
package config

import (
	"fmt"
	"os"

	"github.com/initializ/bento/types"
)

// Load reads and parses a bento.yaml file from the given path.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bento config %s: %w", path, err)
	}
	return types.ParseConfig(data)
}
