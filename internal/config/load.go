package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileName is the conventional configuration file name, relative to the working directory.
const FileName = "seyuna.json"

// Errors returned while loading a configuration.
var (
	ErrConfigNotFound   = errors.New("configuration file not found")
	ErrConfigParse      = errors.New("invalid configuration")
	ErrMissingUISection = errors.New("ui section missing in configuration")
)

// Parse decodes a seyuna.json document. It does not merge defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.UI != nil && cfg.UI.Mode == "" {
		return Config{}, fmt.Errorf("%w: ui.mode is required when ui is set", ErrConfigParse)
	}
	return cfg, nil
}

// Load reads path, decodes it and merges it over the defaults.
func Load(path string) (Config, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: could not find %s, make sure the file exists in the directory", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	user, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return Resolve(user), nil
}

// Marshal renders a configuration as indented JSON, the format `config init` writes.
func Marshal(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return append(data, '\n'), nil
}
