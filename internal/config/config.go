// Package config provides user configuration loading and management.
package config

// Config represents the pyforge user configuration.
// Loaded from ~/.pyforge/config.yaml, with PYFORGE_* env overrides.
type Config struct {
	// Author is the default author name offered by the wizard.
	// Env: PYFORGE_AUTHOR
	Author string `mapstructure:"author" yaml:"author,omitempty"`

	// Email is the default author email offered by the wizard.
	// Env: PYFORGE_EMAIL
	Email string `mapstructure:"email" yaml:"email,omitempty"`

	// License is the default license offered by the wizard.
	// Env: PYFORGE_LICENSE
	License string `mapstructure:"license" yaml:"license,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `pyforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		License: "MIT",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.License == "" {
		out.License = DefaultConfig().License
	}
	return &out
}
