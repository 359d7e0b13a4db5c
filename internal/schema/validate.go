package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pyforge/cli/internal/answers"
)

// ValidationError reports bad raw user input. It is recoverable: the
// answer-store construction loop re-prompts and the error never escapes
// to the top level.
type ValidationError struct {
	// QuestionID is the question whose input was rejected.
	QuestionID string

	// Message explains what was expected.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.QuestionID, e.Message)
}

func invalid(q *Question, format string, args ...any) error {
	return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf(format, args...)}
}

// Validate checks raw input against the question's kind and constraints
// and returns the normalized value. It is a pure function of the input;
// invalid input never mutates any store.
//
// Raw input is always a string: choice answers may be the option value
// or its 1-based index, multi-choice answers are comma-separated.
func Validate(q Question, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch q.Kind {
	case KindText:
		if raw == "" && !q.AllowEmpty {
			return nil, invalid(&q, "a value is required")
		}
		if raw != "" && q.pattern != nil && !q.pattern.MatchString(raw) {
			return nil, invalid(&q, "must match pattern %s", q.Pattern)
		}
		return raw, nil

	case KindBool:
		switch strings.ToLower(raw) {
		case "y", "yes", "true", "1":
			return true, nil
		case "n", "no", "false", "0":
			return false, nil
		default:
			return nil, invalid(&q, "answer yes or no")
		}

	case KindNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, invalid(&q, "must be an integer")
		}
		if q.Min != nil && n < *q.Min {
			return nil, invalid(&q, "must be at least %d", *q.Min)
		}
		if q.Max != nil && n > *q.Max {
			return nil, invalid(&q, "must be at most %d", *q.Max)
		}
		return n, nil

	case KindChoice:
		value, err := resolveOption(&q, raw)
		if err != nil {
			return nil, err
		}
		return value, nil

	case KindMultiChoice:
		return validateMulti(&q, raw)

	default:
		return nil, invalid(&q, "unknown question kind %q", q.Kind)
	}
}

// resolveOption maps raw input to an option value, accepting either the
// value itself or its 1-based index as presented by the prompt.
func resolveOption(q *Question, raw string) (string, error) {
	if q.HasOption(raw) {
		return raw, nil
	}

	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1].Value, nil
	}

	return "", invalid(q, "choose one of: %s", strings.Join(optionValues(q), ", "))
}

// validateMulti normalizes a comma-separated selection. The result is
// deduplicated and ordered by option declaration order, so equivalent
// selections normalize identically regardless of input order.
func validateMulti(q *Question, raw string) ([]string, error) {
	chosen := make(map[string]bool)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := resolveOption(q, part)
		if err != nil {
			return nil, err
		}
		chosen[value] = true
	}

	selected := make([]string, 0, len(chosen))
	for _, opt := range q.Options {
		if chosen[opt.Value] {
			selected = append(selected, opt.Value)
		}
	}
	return selected, nil
}

func optionValues(q *Question) []string {
	values := make([]string, len(q.Options))
	for i, opt := range q.Options {
		values[i] = opt.Value
	}
	return values
}

// DefaultFor returns the value to pre-fill or fall back to for a
// question, as a pure function of the current store. A DefaultFrom seed
// takes precedence over the static default, so e.g. a package name can
// default from the project name answered earlier.
func DefaultFor(q Question, store *answers.Store) any {
	if q.DefaultFrom != "" {
		if v, ok := store.Get(q.DefaultFrom); ok {
			return v
		}
	}

	switch def := q.Default.(type) {
	case []string:
		out := make([]string, len(def))
		copy(out, def)
		return out
	default:
		return q.Default
	}
}

// DefaultString renders a question's default for prompt display.
func DefaultString(q Question, store *answers.Store) string {
	def := DefaultFor(q, store)
	switch v := def.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}
