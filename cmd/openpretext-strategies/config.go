package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	strategies "github.com/shandley/openpretext-strategies"
)

// defaultConfigPath is picked up from the working directory when present.
const defaultConfigPath = ".openpretext-strategies.yaml"

// settings are the resolved tool options: built-in defaults, overlaid by the
// config file, overlaid by explicitly set flags.
type settings struct {
	Lang          string `yaml:"lang"`
	Format        string `yaml:"format"`
	FailFast      bool   `yaml:"fail_fast"`
	DuplicateKeys string `yaml:"duplicate_keys"`
	MaxBytes      int64  `yaml:"max_bytes"`
	MaxDepth      int    `yaml:"max_depth"`
}

func defaultSettings() settings {
	return settings{
		Lang:          "en",
		Format:        "text",
		DuplicateKeys: "warn",
		MaxBytes:      strategies.DefaultMaxBytes,
		MaxDepth:      strategies.DefaultMaxDepth,
	}
}

// loadSettings reads the YAML settings file over the defaults. An explicitly
// requested file must exist; the conventional one is optional.
func loadSettings(path string, explicit bool) (settings, error) {
	s := defaultSettings()
	if path == "" {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// applyFlagOverrides copies in flag values the user actually set, so the
// precedence stays defaults < file < flags.
func applyFlagOverrides(s *settings, cmd *cobra.Command, flagVals settings) {
	f := cmd.Flags()
	if f.Changed("format") {
		s.Format = flagVals.Format
	}
	if f.Changed("lang") {
		s.Lang = flagVals.Lang
	}
	if f.Changed("fail-fast") {
		s.FailFast = flagVals.FailFast
	}
	if f.Changed("duplicate-keys") {
		s.DuplicateKeys = flagVals.DuplicateKeys
	}
	if f.Changed("max-bytes") {
		s.MaxBytes = flagVals.MaxBytes
	}
	if f.Changed("max-depth") {
		s.MaxDepth = flagVals.MaxDepth
	}
}

func (s settings) validate() error {
	switch s.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (text, json)", s.Format)
	}
	switch s.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("invalid lang %q (en, ja)", s.Lang)
	}
	switch s.DuplicateKeys {
	case "warn", "error", "ignore":
	default:
		return fmt.Errorf("invalid duplicate-keys %q (warn, error, ignore)", s.DuplicateKeys)
	}
	if s.MaxBytes < 0 {
		return fmt.Errorf("max-bytes must be >= 0")
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("max-depth must be >= 0")
	}
	return nil
}

// options maps the settings onto the library's validation options.
func (s settings) options() strategies.Options {
	var dup strategies.Severity
	switch s.DuplicateKeys {
	case "error":
		dup = strategies.Error
	case "warn":
		dup = strategies.Warn
	default:
		dup = strategies.Ignore
	}
	return strategies.Options{
		Strictness: strategies.Strictness{OnDuplicateKey: dup},
		MaxBytes:   s.MaxBytes,
		MaxDepth:   s.MaxDepth,
		FailFast:   s.FailFast,
	}
}
