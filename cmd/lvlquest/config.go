package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configFileName is the optional runner configuration, looked up in the
// working directory. Flags always override file values.
const configFileName = "lvlquest.yaml"

// defaultConnections is the edge budget for the clustering day when neither
// the config file nor the flag supplies one.
const defaultConnections = 1000

// fileConfig mirrors lvlquest.yaml.
type fileConfig struct {
	// InputDir is the root holding Day<d> directories.
	InputDir string `yaml:"input_dir"`
	// Connections is the clustering edge budget.
	Connections int `yaml:"connections"`
}

// loadFileConfig reads the optional config file. A missing file is not an
// error — it simply contributes nothing.
func loadFileConfig(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg fileConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
