// Package prompt provides Provider implementations for the wizard: a
// line-based terminal prompter and a file-backed provider for
// non-interactive runs.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/schema"
	"github.com/pyforge/cli/internal/wizard"
)

// Terminal prompts on a line-based reader/writer pair, styled with the
// shared lipgloss palette. Reaching EOF (Ctrl-D) cancels the run.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a terminal provider reading from in and writing
// prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Interactive reports that the terminal can re-prompt.
func (t *Terminal) Interactive() bool { return true }

// AskText prompts for free-form text.
func (t *Terminal) AskText(ctx context.Context, q schema.Question, def string) (string, error) {
	return t.readLine(ctx, output.FormatQuestion(q.Prompt, def), def)
}

// AskBool prompts for a yes/no confirmation.
func (t *Terminal) AskBool(ctx context.Context, q schema.Question, def string) (string, error) {
	return t.readLine(ctx, output.FormatQuestion(q.Prompt+" (y/n)", def), def)
}

// AskNumber prompts for an integer.
func (t *Terminal) AskNumber(ctx context.Context, q schema.Question, def string) (string, error) {
	return t.readLine(ctx, output.FormatQuestion(q.Prompt, def), def)
}

// AskChoice prompts for a single selection, listing the numbered options.
func (t *Terminal) AskChoice(ctx context.Context, q schema.Question, def string) (string, error) {
	t.printOptions(q)
	return t.readLine(ctx, output.FormatQuestion(q.Prompt, def), def)
}

// AskMultiChoice prompts for a comma-separated selection.
func (t *Terminal) AskMultiChoice(ctx context.Context, q schema.Question, def string) (string, error) {
	t.printOptions(q)
	hint := output.StyleDim.Render("(comma-separated)")
	return t.readLine(ctx, output.FormatQuestion(q.Prompt, def)+hint+" ", def)
}

// printOptions lists a question's options with their 1-based indexes.
func (t *Terminal) printOptions(q schema.Question) {
	if q.Help != "" {
		fmt.Fprintln(t.out, output.StyleDim.Render(q.Help))
	}
	for i, opt := range q.Options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, label)
	}
}

// readLine prints the prompt and reads one input line. Pressing enter
// on an empty line takes the default; EOF cancels.
func (t *Terminal) readLine(ctx context.Context, prompt, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wizard.ErrCancelled
	}

	fmt.Fprint(t.out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return "", wizard.ErrCancelled
		}
		if err != io.EOF {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" && def != "" {
		return def, nil
	}
	return line, nil
}
