package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/config"
	"github.com/pyforge/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// User configuration loaded during PersistentPreRunE.
	userConfig *config.Config
)

// NewRootCmd creates the root command for the pyforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pyforge",
		Short:         "Scaffold Python projects from a question-driven template set",
		Long:          `pyforge collects answers to a typed question schema and deterministically generates a ready-to-use Python project tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PYFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewQuestionsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads the user configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return err
	}
	output.Debug("config path resolved",
		"path", pathResult.ConfigPath,
		"source", pathResult.Source,
	)

	cfg, err := config.NewLoader().LoadWithDefaults(pathResult.ConfigPath)
	if err != nil {
		// Commands that never read the config still work with defaults.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	userConfig = cfg

	if verboseFlag {
		config.LogResolvedValues(resolvedValues(cfg))
	}

	return nil
}

// resolvedValues reports each user-config value with its provenance.
func resolvedValues(cfg *config.Config) []config.ResolvedValue {
	return []config.ResolvedValue{
		config.ResolveValue(config.ResolveValueOptions{
			Key:         "author",
			EnvVar:      "PYFORGE_AUTHOR",
			ConfigValue: cfg.Author,
		}),
		config.ResolveValue(config.ResolveValueOptions{
			Key:         "email",
			EnvVar:      "PYFORGE_EMAIL",
			ConfigValue: cfg.Email,
		}),
		config.ResolveValue(config.ResolveValueOptions{
			Key:          "license",
			EnvVar:       "PYFORGE_LICENSE",
			ConfigValue:  cfg.License,
			DefaultValue: config.DefaultConfig().License,
		}),
	}
}
