// Package wizard builds the answer store by walking the question schema
// in its fixed order, delegating input capture to a Provider. The store
// is handed over only once complete; a cancelled walk leaves nothing
// behind.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/pyforge/cli/internal/answers"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/schema"
)

// ErrCancelled is returned when the user aborts mid-prompt. It wraps
// ErrInput so the top level reports it as a user-facing condition.
var ErrCancelled = fmt.Errorf("cancelled: %w", oerrors.ErrInput)

// Provider captures raw input for one question. Each method corresponds
// to a question kind; the raw result is always validated through the
// schema before being recorded, regardless of the implementation.
//
// A provider returning ErrCancelled aborts the walk.
type Provider interface {
	// AskText prompts for free-form text.
	AskText(ctx context.Context, q schema.Question, def string) (string, error)

	// AskBool prompts for a yes/no confirmation.
	AskBool(ctx context.Context, q schema.Question, def string) (string, error)

	// AskNumber prompts for an integer.
	AskNumber(ctx context.Context, q schema.Question, def string) (string, error)

	// AskChoice prompts for a single selection from the option set.
	AskChoice(ctx context.Context, q schema.Question, def string) (string, error)

	// AskMultiChoice prompts for a comma-separated selection.
	AskMultiChoice(ctx context.Context, q schema.Question, def string) (string, error)

	// Interactive reports whether the provider can re-prompt after a
	// validation failure. Non-interactive providers fail the run on
	// the first invalid answer instead of looping forever.
	Interactive() bool
}

// Collect walks the schema in order and returns the completed store.
//
// For each question it evaluates the activation conditions against the
// answers so far: inactive questions are recorded with an inactive
// marker and never prompted. Active questions are prompted, validated,
// and re-prompted on validation failure until the provider cancels.
func Collect(ctx context.Context, s *schema.Schema, p Provider) (*answers.Store, error) {
	values := make(map[string]any, s.Len())
	var inactive []string

	for _, q := range s.Questions() {
		// Evaluate activation against a snapshot of the answers so far.
		// Inactive questions take the marker, not their default, so the
		// resolver can distinguish "answered default" from "skipped".
		current := answers.NewStore(values, inactive)

		if !active(q, current) {
			output.Debug("question inactive", "id", q.ID)
			inactive = append(inactive, q.ID)
			continue
		}

		value, err := askValidated(ctx, q, current, p)
		if err != nil {
			return nil, err
		}

		output.Debug("answer recorded", "id", q.ID, "value", value)
		values[q.ID] = value
	}

	return answers.NewStore(values, inactive), nil
}

// active reports whether all activation conditions hold.
func active(q schema.Question, store *answers.Store) bool {
	for _, cond := range q.ActiveIf {
		if !cond.Eval(store) {
			return false
		}
	}
	return true
}

// askValidated prompts until the raw input validates. Providers receive
// the rendered default and substitute it for empty input themselves, so
// every recorded value passes through Validate exactly once.
func askValidated(ctx context.Context, q schema.Question, store *answers.Store, p Provider) (any, error) {
	def := schema.DefaultString(q, store)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		raw, err := ask(ctx, q, def, p)
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return nil, err
			}
			return nil, oerrors.NewInputError(err.Error(), q.ID, "")
		}

		value, err := schema.Validate(q, raw)
		if err == nil {
			return value, nil
		}

		var verr *schema.ValidationError
		if !errors.As(err, &verr) || !p.Interactive() {
			return nil, oerrors.NewInputError(err.Error(), q.ID,
				"Fix the answer and retry.")
		}

		// Recoverable: report and re-prompt.
		output.Warn(verr.Message, "question", q.ID)
	}
}

// ask dispatches to the provider method matching the question kind.
func ask(ctx context.Context, q schema.Question, def string, p Provider) (string, error) {
	switch q.Kind {
	case schema.KindText:
		return p.AskText(ctx, q, def)
	case schema.KindBool:
		return p.AskBool(ctx, q, def)
	case schema.KindNumber:
		return p.AskNumber(ctx, q, def)
	case schema.KindChoice:
		return p.AskChoice(ctx, q, def)
	case schema.KindMultiChoice:
		return p.AskMultiChoice(ctx, q, def)
	default:
		return "", oerrors.NewSchemaError(fmt.Sprintf("unknown kind %q", q.Kind), q.ID, "")
	}
}
