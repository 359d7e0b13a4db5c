// Package schema provides the typed question model: kinds, options,
// declarative activation conditions, and input validation. Definitions
// are loaded once at startup and checked immediately; a malformed
// schema never reaches the prompting loop.
package schema

import (
	"fmt"
	"regexp"

	"github.com/pyforge/cli/internal/answers"
	oerrors "github.com/pyforge/cli/internal/errors"
)

// Kind identifies a question's input type.
type Kind string

const (
	// KindText is free-form text input.
	KindText Kind = "text"

	// KindBool is a yes/no confirmation.
	KindBool Kind = "bool"

	// KindNumber is integer input with optional bounds.
	KindNumber Kind = "number"

	// KindChoice selects exactly one value from an option set.
	KindChoice Kind = "choice"

	// KindMultiChoice selects zero or more values from an option set.
	KindMultiChoice Kind = "multi"
)

// Option is one selectable value of a choice or multi-choice question.
type Option struct {
	// Value is the normalized value recorded in the answer store.
	Value string

	// Label is the human-readable text shown by the prompt provider.
	Label string
}

// Condition is a declarative predicate over earlier answers. Exactly one
// of Equals, OneOf, or Contains selects the comparison mode; a condition
// with only Question set is satisfied when the answer is truthy (a true
// bool, a non-empty string, or a non-empty selection).
//
// Conditions are data, not functions, so the loader can verify every
// reference at startup.
type Condition struct {
	// Question is the ID of the referenced question.
	Question string

	// Equals is satisfied when the answer equals this value.
	Equals any

	// OneOf is satisfied when the answer is one of these values.
	OneOf []string

	// Contains is satisfied when a multi-choice answer includes this value.
	Contains string

	// Any is satisfied when at least one nested condition holds. When
	// set, the other fields are ignored. This is the only OR construct;
	// conditions in an ActiveIf list combine with AND.
	Any []Condition
}

// Eval evaluates the condition against a completed (or in-progress)
// store. An inactive or missing answer never satisfies a condition.
func (c Condition) Eval(store *answers.Store) bool {
	if len(c.Any) > 0 {
		for _, sub := range c.Any {
			if sub.Eval(store) {
				return true
			}
		}
		return false
	}

	v, ok := store.Get(c.Question)
	if !ok {
		return false
	}

	switch {
	case c.Equals != nil:
		// Comparing a non-comparable dynamic type (a selection slice)
		// against Equals would panic; those never match.
		switch v.(type) {
		case string, bool, int:
			return v == c.Equals
		}
		return false
	case len(c.OneOf) > 0:
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, candidate := range c.OneOf {
			if s == candidate {
				return true
			}
		}
		return false
	case c.Contains != "":
		selected, ok := v.([]string)
		if !ok {
			return false
		}
		for _, s := range selected {
			if s == c.Contains {
				return true
			}
		}
		return false
	default:
		return truthy(v)
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case int:
		return val != 0
	default:
		return false
	}
}

// Question is a single unit of user input. All fields are read-only
// after the schema is loaded.
type Question struct {
	// ID is the unique question key.
	ID string

	// Prompt is the text shown to the user.
	Prompt string

	// Help is optional longer guidance shown by the prompt provider.
	Help string

	// Kind selects the input type.
	Kind Kind

	// Options enumerates the values for choice and multi-choice kinds.
	Options []Option

	// Default is the pre-filled value offered by the prompt provider
	// and used when a non-interactive answer file omits the question.
	Default any

	// DefaultFrom seeds the default from an earlier answer (e.g. the
	// author name from the user config question before it). It must
	// reference an earlier question.
	DefaultFrom string

	// AllowEmpty permits empty text input.
	AllowEmpty bool

	// Pattern constrains text input when non-empty.
	Pattern string

	// Min and Max bound number input when non-nil.
	Min *int
	Max *int

	// ActiveIf lists conditions that must all hold for the question to
	// be asked. Conditions may only reference earlier questions. An
	// inactive question is recorded with an inactive marker.
	ActiveIf []Condition

	pattern *regexp.Regexp
}

// HasOption reports whether value is one of the question's options.
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Schema is the fixed, topologically ordered question list.
type Schema struct {
	questions []Question
	index     map[string]int
}

// New validates the question list and returns the loaded schema. The
// load-time checks enforce the topological-order invariant: activation
// conditions and default seeds may only reference earlier questions.
func New(questions []Question) (*Schema, error) {
	s := &Schema{
		questions: make([]Question, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	copy(s.questions, questions)

	for i := range s.questions {
		q := &s.questions[i]

		if q.ID == "" {
			return nil, oerrors.NewSchemaError("question has empty ID", fmt.Sprintf("question %d", i), "")
		}
		if _, dup := s.index[q.ID]; dup {
			return nil, oerrors.NewSchemaError("duplicate question ID", q.ID, "Question IDs must be unique.")
		}
		s.index[q.ID] = i

		if err := checkKind(q); err != nil {
			return nil, err
		}

		for _, ref := range conditionRefs(q.ActiveIf) {
			pos, known := s.index[ref]
			if !known || pos >= i {
				return nil, oerrors.NewSchemaError(
					fmt.Sprintf("activation condition references %q, which is not an earlier question", ref),
					q.ID,
					"Activation conditions may only reference questions earlier in the schema order.",
				)
			}
		}

		if q.DefaultFrom != "" {
			pos, known := s.index[q.DefaultFrom]
			if !known || pos >= i {
				return nil, oerrors.NewSchemaError(
					fmt.Sprintf("default seed references %q, which is not an earlier question", q.DefaultFrom),
					q.ID,
					"Defaults may only be seeded from earlier questions.",
				)
			}
		}

		if q.Pattern != "" {
			re, err := regexp.Compile(q.Pattern)
			if err != nil {
				return nil, oerrors.NewSchemaError(
					fmt.Sprintf("invalid pattern: %v", err),
					q.ID,
					"",
				)
			}
			q.pattern = re
		}
	}

	return s, nil
}

// conditionRefs collects every question ID referenced by a condition
// list, descending into nested Any branches.
func conditionRefs(conds []Condition) []string {
	var refs []string
	for _, c := range conds {
		if len(c.Any) > 0 {
			refs = append(refs, conditionRefs(c.Any)...)
			continue
		}
		refs = append(refs, c.Question)
	}
	return refs
}

// checkKind validates kind-specific invariants.
func checkKind(q *Question) error {
	switch q.Kind {
	case KindChoice, KindMultiChoice:
		if len(q.Options) == 0 {
			return oerrors.NewSchemaError("choice question has no options", q.ID, "")
		}
		switch def := q.Default.(type) {
		case nil:
		case string:
			if q.Kind == KindChoice && !q.HasOption(def) {
				return oerrors.NewSchemaError(
					fmt.Sprintf("default %q is not an option", def), q.ID, "")
			}
		case []string:
			if q.Kind == KindMultiChoice {
				for _, v := range def {
					if !q.HasOption(v) {
						return oerrors.NewSchemaError(
							fmt.Sprintf("default %q is not an option", v), q.ID, "")
					}
				}
			}
		}
	case KindText, KindBool, KindNumber:
		if len(q.Options) != 0 {
			return oerrors.NewSchemaError(
				fmt.Sprintf("%s question must not declare options", q.Kind), q.ID, "")
		}
	default:
		return oerrors.NewSchemaError(fmt.Sprintf("unknown kind %q", q.Kind), q.ID, "")
	}
	return nil
}

// Questions returns the questions in their fixed topological order.
func (s *Schema) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// ByID returns the question with the given ID.
func (s *Schema) ByID(id string) (Question, bool) {
	i, ok := s.index[id]
	if !ok {
		return Question{}, false
	}
	return s.questions[i], true
}

// Has reports whether the schema declares a question with the given ID.
func (s *Schema) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of questions.
func (s *Schema) Len() int {
	return len(s.questions)
}
