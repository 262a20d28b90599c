// Package config provides configuration handling for phpgen.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	Options Options `yaml:"options"`
}

// Options represents output options.
type Options struct {
	PerClass  bool   `yaml:"perClass"`  // one output file per class
	OutputDir string `yaml:"outputDir"` // target directory for per-class mode
	OpenTag   bool   `yaml:"openTag"`   // emit the <?php opening tag
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{Options: DefaultOptions()}
}

// DefaultOptions returns default output options.
func DefaultOptions() Options {
	return Options{
		PerClass:  false,
		OutputDir: ".",
		OpenTag:   true,
	}
}

// fileOptions mirrors Options with pointer fields so merge can tell an
// absent key apart from an explicit false.
type fileOptions struct {
	PerClass  *bool  `yaml:"perClass"`
	OutputDir string `yaml:"outputDir"`
	OpenTag   *bool  `yaml:"openTag"`
}

// LoadFile loads configuration from a YAML file and merges it over the
// defaults. Keys absent from the file keep their default values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	var loaded struct {
		Options fileOptions `yaml:"options"`
	}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "parsing YAML config")
	}
	c.merge(loaded.Options)
	return nil
}

// merge merges the loaded options into the current config.
func (c *Config) merge(loaded fileOptions) {
	if loaded.PerClass != nil {
		c.Options.PerClass = *loaded.PerClass
	}
	if loaded.OutputDir != "" {
		c.Options.OutputDir = loaded.OutputDir
	}
	if loaded.OpenTag != nil {
		c.Options.OpenTag = *loaded.OpenTag
	}
}
