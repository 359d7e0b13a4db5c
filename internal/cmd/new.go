package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/answers"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/fswrite"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/project"
	"github.com/pyforge/cli/internal/prompt"
	"github.com/pyforge/cli/internal/resolve"
	"github.com/pyforge/cli/internal/schema"
	"github.com/pyforge/cli/internal/wizard"
)

var (
	answersFlag        string
	nonInteractiveFlag bool
	dryRunFlag         bool
	saveAnswersFlag    string
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new [dir]",
		Short: "Generate a new Python project",
		Long: `Generate a new Python project tree.

Answers are collected interactively, or from a YAML answer file with
--answers. The target directory defaults to ./<project_name>.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	newCmd.Flags().StringVar(&answersFlag, "answers", "", "YAML answer file mapping question IDs to values")
	newCmd.Flags().BoolVar(&nonInteractiveFlag, "non-interactive", false, "Never prompt; requires --answers")
	newCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report the file set without writing anything")
	newCmd.Flags().StringVar(&saveAnswersFlag, "save-answers", "", "Write the completed answers to this file")

	return newCmd
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, units, err := project.Load(project.Defaults{
		Author:  userConfig.Author,
		Email:   userConfig.Email,
		License: userConfig.License,
	})
	if err != nil {
		return err
	}

	provider, err := buildProvider(s)
	if err != nil {
		return err
	}

	store, err := wizard.Collect(ctx, s, provider)
	if err != nil {
		return err
	}

	targetDir, err := targetDirectory(args, store)
	if err != nil {
		return err
	}

	active, err := resolve.Resolve(units, store)
	if err != nil {
		return err
	}
	files, err := resolve.Materialize(active, store)
	if err != nil {
		return err
	}

	if saveAnswersFlag != "" {
		if err := answers.SaveFile(store, saveAnswersFlag); err != nil {
			return fmt.Errorf("saving answers: %w", err)
		}
		output.Info("answers saved", "path", saveAnswersFlag)
	}

	if dryRunFlag {
		report, err := fswrite.Plan(targetDir, files)
		if err != nil {
			return err
		}
		output.Println(output.RenderFileTree(filepath.Base(targetDir), report.Annotations()))
		output.Println(output.StyleSummary.Render("Dry run: nothing was written."))
		return nil
	}

	var report *fswrite.Report
	writeErr := output.RunWithSpinner(ctx, "Writing project files...", func() error {
		var err error
		report, err = fswrite.Write(targetDir, files)
		return err
	})
	if writeErr != nil {
		return writeErr
	}

	output.Println(output.RenderFileTree(filepath.Base(targetDir), report.Annotations()))

	if err := report.Err(); err != nil {
		for _, e := range report.Failed() {
			output.Error("write failed", "path", e.Path, "error", e.Err)
		}
		output.Println(output.FormatCross("Some files could not be written."))
		return err
	}

	name := store.GetString("project_name")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Project %s created at %s",
		output.StyleNoun.Render(name), output.StyleNoun.Render(targetDir))))
	return nil
}

// buildProvider selects the answer source for this run.
func buildProvider(s *schema.Schema) (wizard.Provider, error) {
	if answersFlag != "" {
		raw, err := answers.LoadFile(answersFlag)
		if err != nil {
			return nil, err
		}
		p := prompt.NewAnswerFile(raw)
		if unknown := p.Unknown(s); len(unknown) > 0 {
			return nil, oerrors.NewInputError(
				fmt.Sprintf("answer file contains unknown question IDs: %s", strings.Join(unknown, ", ")),
				answersFlag,
				"Run 'pyforge questions' to list the valid question IDs.",
			)
		}
		return p, nil
	}

	if nonInteractiveFlag {
		return nil, oerrors.NewInputError(
			"--non-interactive requires --answers",
			"",
			"Provide a YAML answer file with --answers.",
		)
	}

	return prompt.NewTerminal(os.Stdin, os.Stdout), nil
}

// targetDirectory picks the destination: the positional argument, or
// ./<project_name>.
func targetDirectory(args []string, store *answers.Store) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return filepath.Join(cwd, store.GetString("project_name")), nil
}
