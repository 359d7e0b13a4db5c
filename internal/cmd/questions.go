package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/project"
	"github.com/pyforge/cli/internal/schema"
)

// NewQuestionsCmd creates the questions command.
func NewQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the question schema",
		Long:  `List every question in the order it is asked, with its kind, options, and activation conditions.`,
		RunE:  runQuestions,
	}
}

func runQuestions(cmd *cobra.Command, args []string) error {
	s, _, err := project.Load(project.Defaults{
		Author:  userConfig.Author,
		Email:   userConfig.Email,
		License: userConfig.License,
	})
	if err != nil {
		return err
	}

	for _, q := range s.Questions() {
		line := fmt.Sprintf("%s  %s",
			output.StyleNoun.Render(q.ID),
			output.StyleDim.Render(string(q.Kind)))
		if len(q.ActiveIf) > 0 {
			line += "  " + output.StyleDim.Render("(active if "+describeConditions(q.ActiveIf)+")")
		}
		output.Println(line)
		output.Println("    " + q.Prompt)
		if len(q.Options) > 0 {
			values := make([]string, 0, len(q.Options))
			for _, opt := range q.Options {
				values = append(values, opt.Value)
			}
			output.Println("    " + output.StyleDim.Render("options: "+strings.Join(values, ", ")))
		}
	}
	return nil
}

// describeConditions renders an ActiveIf list for display.
func describeConditions(conds []schema.Condition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, describeCondition(c))
	}
	return strings.Join(parts, " and ")
}

func describeCondition(c schema.Condition) string {
	switch {
	case len(c.Any) > 0:
		parts := make([]string, 0, len(c.Any))
		for _, sub := range c.Any {
			parts = append(parts, describeCondition(sub))
		}
		return "(" + strings.Join(parts, " or ") + ")"
	case c.Equals != nil:
		return fmt.Sprintf("%s == %v", c.Question, c.Equals)
	case len(c.OneOf) > 0:
		return fmt.Sprintf("%s in [%s]", c.Question, strings.Join(c.OneOf, ", "))
	case c.Contains != "":
		return fmt.Sprintf("%s includes %s", c.Question, c.Contains)
	default:
		return c.Question
	}
}
