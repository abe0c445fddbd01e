package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/junc/internal/logging"
)

// Load reads and validates a junc.yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// LoadLayers loads every layer in order and merges them over Default.
// Missing files are skipped unless the layer is Required. The returned
// layers record which files were loaded.
func LoadLayers(layers []LayerInfo) (*Config, []LayerInfo, error) {
	configs := []*Config{Default()}
	for i := range layers {
		cfg, err := Load(layers[i].Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !layers[i].Required {
				continue
			}
			layers[i].Err = err
			return nil, layers, err
		}
		layers[i].Loaded = true
		configs = append(configs, cfg)
	}

	merged, err := MergeAll(configs)
	if err != nil {
		return nil, layers, err
	}
	return merged, layers, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s validation failed: %s", e.Path, strings.Join(e.Errors, "; "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	return errs
}
