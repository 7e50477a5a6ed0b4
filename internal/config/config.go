// Package config loads converter settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aerissecure/xl2tex/latex"
	"github.com/aerissecure/xl2tex/xlsx"
)

// Config is the on-disk settings file.
//
//	round_to_dp: true
//	num_dp: 3
//	booktabs: true
//	sheet: Results
//	range: B2:H20
//	reader: excelize
//	output: table.tex
type Config struct {
	latex.Settings `yaml:",inline"`

	Sheet  string `yaml:"sheet"`
	Range  string `yaml:"range"`
	Reader string `yaml:"reader"`
	Output string `yaml:"output"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Settings: latex.Settings{NumDP: 2, Booktabs: true},
		Reader:   xlsx.ReaderUnioffice,
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would only fail later, mid-conversion.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	switch c.Reader {
	case "", xlsx.ReaderUnioffice, xlsx.ReaderExcelize:
	default:
		return fmt.Errorf("%w: %q", xlsx.ErrUnknownReader, c.Reader)
	}
	if c.Range != "" {
		if _, err := xlsx.ParseBounds(c.Range); err != nil {
			return fmt.Errorf("bad range: %w", err)
		}
	}
	return nil
}
