// Package config loads docfold settings from .docfold.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".docfold.yaml"

// Config holds the settings a build runs with.
type Config struct {
	// Name labels the project root reflection.
	Name string `yaml:"name"`
	// Exclude holds doublestar globs relative to each root.
	Exclude []string `yaml:"exclude"`
	// Output is where the resolved tree is written; empty skips writing.
	Output string `yaml:"output"`
	// Format is "yaml" or "json".
	Format string `yaml:"format"`
	// Parallel bounds concurrent package parsing.
	Parallel int `yaml:"parallel"`
	// Check validates the tree after each merge.
	Check bool `yaml:"check"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Name:     "docs",
		Format:   "yaml",
		Parallel: 4,
	}
}

// Load reads path on top of the defaults. When path is empty, FileName in
// dir is used if it exists.
func Load(dir, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}

	return cfg, nil
}
