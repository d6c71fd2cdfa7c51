// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file,
// looked up in the project directory only. There is no search path
// and no home-directory fallback — what the project declares is what
// every activation gets.
const ConfigFileName = "ingot.yaml"

// Config is the per-project configuration.
type Config struct {
	Shell ShellConfig `yaml:"shell"`
}

// ShellConfig overrides and extends the built-in dev-shell defaults.
type ShellConfig struct {
	// Env entries are merged over the default environment
	// descriptor. A key that collides with a default replaces it.
	Env map[string]string `yaml:"env"`

	// Packages are appended to the default package set.
	Packages []string `yaml:"packages"`
}

// LoadConfig reads the project's ingot.yaml. A missing file is not an
// error — it yields the zero config, meaning built-in defaults apply
// unchanged.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}
