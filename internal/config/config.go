// Package config handles configuration loading for the extraction server.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration file structure. Zero values
// are resolved to defaults by the server context.
type Config struct {
	Attribution   string `yaml:"attribution,omitempty"`
	MaxUploadSize int64  `yaml:"max_upload_size,omitempty"`
	Compact       bool   `yaml:"compact,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
