package config

import (
	"os"

	"github.com/pyforge/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveValueOptions contains the candidate values for one key.
type ResolveValueOptions struct {
	// Key is the configuration key, for logging.
	Key string
	// FlagValue is the command-line flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable name to consult.
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// DefaultValue is the built-in fallback.
	DefaultValue string
}

// ResolveValue resolves one configuration value using precedence:
// (1) flag, (2) env, (3) config file, (4) built-in default.
// Values overridden by a higher precedence are recorded as shadowed.
func ResolveValue(opts ResolveValueOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	shadow := func(source ConfigSource, value string) {
		if value != "" {
			result.Shadowed[source] = value
		}
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		shadow(SourceEnv, envValue)
		shadow(SourceConfig, opts.ConfigValue)
		shadow(SourceDefault, opts.DefaultValue)
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		shadow(SourceConfig, opts.ConfigValue)
		shadow(SourceDefault, opts.DefaultValue)
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
		shadow(SourceDefault, opts.DefaultValue)
	default:
		result.Value = opts.DefaultValue
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	ConfigPath string
	Source     ConfigSource
	Shadowed   map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PYFORGE_CONFIG env, (3) ~/.pyforge/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("PYFORGE_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
