package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
)

var forceInitFlag bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long:  `Manage the pyforge user configuration (~/.pyforge/config.yaml).`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the initial config file",
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&forceInitFlag, "force", false, "Overwrite an existing config file")
	return initCmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	exists, err := config.ConfigFileExists(configFlag)
	if err != nil {
		return err
	}
	if exists && !forceInitFlag {
		return oerrors.NewInputError(
			"config file already exists",
			configFlag,
			"Pass --force to overwrite it.",
		)
	}

	path, err := config.Save(config.DefaultConfig(), configFlag)
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Config written to " + output.StyleNoun.Render(path)))
	output.Println(output.StyleDim.Render("Set author, email, and license to pre-fill the wizard."))
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long:  `Show each configuration value with the source it was resolved from (flag, env, config file, or default).`,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	for _, v := range resolvedValues(userConfig) {
		value := v.Value
		if value == "" {
			value = output.StyleDim.Render("(unset)")
		}
		output.Println(fmt.Sprintf("%s = %s  %s",
			output.StyleNoun.Render(v.Key),
			value,
			output.StyleDim.Render("["+string(v.Source)+"]")))
		for source, shadowed := range v.Shadowed {
			output.Println(output.StyleDim.Render(
				fmt.Sprintf("    shadows %s from %s", shadowed, source)))
		}
	}
	return nil
}
