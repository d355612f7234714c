package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the file names probed during discovery, in order.
var ConfigFileNames = []string{".nixlint.yaml", ".nixlint.yml", "nixlint.yaml"}

// Load reads and parses a config file. A missing file is an error; use
// Discover for optional configs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// Discover walks from dir up to the filesystem root looking for a config
// file. Returns the defaults when none is found.
func Discover(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolve config dir: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err != nil {
					return nil, path, err
				}
				return cfg, path, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, "", fmt.Errorf("stat %s: %w", path, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return NewConfig(), "", nil
		}
		dir = parent
	}
}
