package prompt

import (
	"context"

	"github.com/pyforge/cli/internal/answers"
	"github.com/pyforge/cli/internal/schema"
)

// AnswerFile serves raw values from a loaded answer file. Answers pass
// through the identical schema validation as interactive input, and a
// question the file omits falls back to its declared default.
type AnswerFile struct {
	raw map[string]any
}

// NewAnswerFile creates a provider over raw answer-file values, as
// returned by answers.LoadFile.
func NewAnswerFile(raw map[string]any) *AnswerFile {
	return &AnswerFile{raw: raw}
}

// Interactive reports that the provider cannot re-prompt: the first
// invalid answer fails the run.
func (a *AnswerFile) Interactive() bool { return false }

// lookup returns the file's raw answer for q, or the rendered default
// when the file omits the question. A present-but-empty selection stays
// empty, so a saved store reloads to the identical store.
func (a *AnswerFile) lookup(q schema.Question, def string) (string, error) {
	v, ok := a.raw[q.ID]
	if !ok {
		return def, nil
	}
	return answers.RawString(v), nil
}

// AskText returns the file's answer for a text question.
func (a *AnswerFile) AskText(_ context.Context, q schema.Question, def string) (string, error) {
	return a.lookup(q, def)
}

// AskBool returns the file's answer for a bool question.
func (a *AnswerFile) AskBool(_ context.Context, q schema.Question, def string) (string, error) {
	return a.lookup(q, def)
}

// AskNumber returns the file's answer for a number question.
func (a *AnswerFile) AskNumber(_ context.Context, q schema.Question, def string) (string, error) {
	return a.lookup(q, def)
}

// AskChoice returns the file's answer for a choice question.
func (a *AnswerFile) AskChoice(_ context.Context, q schema.Question, def string) (string, error) {
	return a.lookup(q, def)
}

// AskMultiChoice returns the file's answer for a multi-choice question.
func (a *AnswerFile) AskMultiChoice(_ context.Context, q schema.Question, def string) (string, error) {
	return a.lookup(q, def)
}

// Unknown returns the file keys that do not match any schema question,
// so typos fail loudly instead of being silently ignored.
func (a *AnswerFile) Unknown(s *schema.Schema) []string {
	var unknown []string
	for key := range a.raw {
		if !s.Has(key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
