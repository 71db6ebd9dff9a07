// Package config holds the constants shared across sumtype and the
// sumtype.yaml configuration used by `sumtype check`.
//
// The configuration controls which packages are checked, whether a default
// clause counts as covering every member of a sealed interface, which
// interfaces are skipped, and how findings are printed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level sumtype.yaml configuration.
type Config struct {
	// DefaultSignifiesExhaustive makes a `default:` clause satisfy the
	// exhaustiveness rule. Defaults to true when omitted.
	DefaultSignifiesExhaustive *bool `yaml:"default_signifies_exhaustive,omitempty"`

	// Packages are go/packages load patterns. Defaults to ["./..."].
	Packages []string `yaml:"packages,omitempty"`

	// Exclude lists sealed interfaces that are not checked, written as
	// "<import path>.<Name>" (e.g. "example.com/shapes.Shape").
	Exclude []string `yaml:"exclude,omitempty"`

	// Output controls how findings are printed.
	Output Output `yaml:"output,omitempty"`
}

// Output controls diagnostic rendering.
type Output struct {
	// Color is one of auto, always, never. Defaults to auto.
	Color string `yaml:"color,omitempty"`

	// Format is one of text, json. Defaults to text.
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no sumtype.yaml is found.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a sumtype.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses sumtype.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for sumtype.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file, or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	for i, pattern := range c.Packages {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("%s: packages[%d]: empty pattern", path, i)
		}
	}

	seen := make(map[string]bool)
	for i, name := range c.Exclude {
		dot := strings.LastIndex(name, ".")
		if dot <= 0 || dot == len(name)-1 {
			return fmt.Errorf("%s: exclude[%d]: %q is not of the form <import path>.<Name>", path, i, name)
		}
		if seen[name] {
			return fmt.Errorf("%s: exclude[%d]: %q listed twice", path, i, name)
		}
		seen[name] = true
	}

	switch c.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: output.color: unknown value %q (want auto, always or never)", path, c.Output.Color)
	}

	switch c.Output.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%s: output.format: unknown value %q (want text or json)", path, c.Output.Format)
	}

	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.DefaultSignifiesExhaustive == nil {
		v := true
		c.DefaultSignifiesExhaustive = &v
	}
	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// DefaultExhaustive reports the effective default_signifies_exhaustive value.
func (c *Config) DefaultExhaustive() bool {
	return c.DefaultSignifiesExhaustive == nil || *c.DefaultSignifiesExhaustive
}

// Excluded reports whether the qualified interface name is listed in exclude.
func (c *Config) Excluded(qualified string) bool {
	for _, name := range c.Exclude {
		if name == qualified {
			return true
		}
	}
	return false
}
