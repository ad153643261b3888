// Package schemas holds the embedded JSON Schemas for bento configuration files.
package schemas

import _ "embed"

// ConfigV1Schema is the JSON Schema for bento.yaml (v1).
//
//go:embed bento_config_v1.json
var ConfigV1Schema []byte
