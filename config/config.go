// Package config loads the search.Config an embedding application wants a
// Table's fuzzy search to run with, from a structured YAML schema file.
package config

import (
	"fmt"
	"os"

	"github.com/acksell/norm/search"
	"gopkg.in/yaml.v3"
)

// File is the root structure of a norm search-config YAML file.
type File struct {
	Search SearchSection `yaml:"search"`
}

// SearchSection mirrors search.Config's fields for YAML decoding. Zero
// values mean "use the default" rather than "use zero": an n-gram size of
// zero would never match anything. For MaxDistance this means a tolerance
// of zero (exact matches only) cannot be set from a file.
type SearchSection struct {
	NgramSize   int `yaml:"ngramSize"`
	MaxDistance int `yaml:"maxDistance"`
}

// Load reads a search.Config from the YAML file at path. An empty path, or
// a path that doesn't exist, yields search.DefaultConfig() untouched.
func Load(path string) (search.Config, error) {
	cfg := search.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read search config %q: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse search config %q: %w", path, err)
	}

	if file.Search.NgramSize > 0 {
		cfg.NgramSize = file.Search.NgramSize
	}
	if file.Search.MaxDistance > 0 {
		cfg.MaxDistance = file.Search.MaxDistance
	}
	return cfg, nil
}
