// Package config defines the configuration types and defaults for
// tree-styler-cs.
package config

import "strings"

// Config is the top-level configuration.
type Config struct {
	Indent     IndentConfig    `yaml:"indent"`
	Rules      map[string]bool `yaml:"rules"`
	Extensions []string        `yaml:"extensions"`
}

// IndentConfig controls how one indentation step is rendered.
type IndentConfig struct {
	// Style is "space" or "tab".
	Style string `yaml:"style"`
	// Size is the number of columns per step. Ignored for tabs.
	Size int `yaml:"size"`
}

// Unit returns the literal text of a single indentation step.
func (c IndentConfig) Unit() string {
	if c.Style == "tab" {
		return "\t"
	}
	return strings.Repeat(" ", c.Size)
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Indent: IndentConfig{
			Style: "space",
			Size:  4,
		},
		Rules: map[string]bool{
			"member-order": true,
			"block-format": true,
		},
		Extensions: []string{".cs"},
	}
}

// RuleEnabled reports whether a rule is switched on. Rules missing from the
// config map default to enabled, so a partial YAML file only has to list the
// rules it turns off.
func (c *Config) RuleEnabled(id string) bool {
	if c.Rules == nil {
		return true
	}
	enabled, ok := c.Rules[id]
	if !ok {
		return true
	}
	return enabled
}
