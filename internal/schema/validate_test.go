package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/cli/internal/answers"
)

func intPtr(n int) *int { return &n }

func TestValidate_Text(t *testing.T) {
	q := Question{ID: "project_name", Kind: KindText, Pattern: `^[a-z][a-z0-9_-]*$`}
	s, err := New([]Question{q})
	require.NoError(t, err)
	q, _ = s.ByID("project_name")

	v, err := Validate(q, "  my-app  ")
	require.NoError(t, err)
	assert.Equal(t, "my-app", v)

	_, err = Validate(q, "")
	assert.Error(t, err)

	_, err = Validate(q, "9lives")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "project_name", verr.QuestionID)
}

func TestValidate_TextAllowEmpty(t *testing.T) {
	q := Question{ID: "desc", Kind: KindText, AllowEmpty: true}
	v, err := Validate(q, "")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestValidate_Bool(t *testing.T) {
	q := Question{ID: "pre_commit", Kind: KindBool}

	for _, raw := range []string{"y", "Yes", "TRUE", "1"} {
		v, err := Validate(q, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, true, v)
	}
	for _, raw := range []string{"n", "No", "false", "0"} {
		v, err := Validate(q, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, false, v)
	}

	_, err := Validate(q, "maybe")
	assert.Error(t, err)
}

func TestValidate_NumberBounds(t *testing.T) {
	q := Question{ID: "line_length", Kind: KindNumber, Min: intPtr(79), Max: intPtr(120)}

	v, err := Validate(q, "95")
	require.NoError(t, err)
	assert.Equal(t, 95, v)

	_, err = Validate(q, "78")
	assert.Error(t, err)
	_, err = Validate(q, "121")
	assert.Error(t, err)
	_, err = Validate(q, "many")
	assert.Error(t, err)
}

func TestValidate_Choice(t *testing.T) {
	q := Question{ID: "docs", Kind: KindChoice, Options: []Option{
		{Value: "mkdocs"}, {Value: "sphinx"}, {Value: "none"},
	}}

	v, err := Validate(q, "mkdocs")
	require.NoError(t, err)
	assert.Equal(t, "mkdocs", v)

	// 1-based index input resolves to the option value.
	v, err = Validate(q, "2")
	require.NoError(t, err)
	assert.Equal(t, "sphinx", v)

	_, err = Validate(q, "rst")
	assert.Error(t, err)
	_, err = Validate(q, "4")
	assert.Error(t, err)
}

func TestValidate_MultiChoiceNormalizesOrder(t *testing.T) {
	q := Question{ID: "formatter", Kind: KindMultiChoice, Options: []Option{
		{Value: "ruff"}, {Value: "isort"}, {Value: "black"},
	}}

	// Input order and duplicates do not matter: the normalized value
	// follows option declaration order.
	v, err := Validate(q, "isort, ruff, isort")
	require.NoError(t, err)
	assert.Equal(t, []string{"ruff", "isort"}, v)

	v, err = Validate(q, "")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = Validate(q, "ruff,unknown")
	assert.Error(t, err)
}

func TestDefaultFor_SeededFromEarlierAnswer(t *testing.T) {
	store := answers.NewStore(map[string]any{"project_name": "my-app"}, nil)

	q := Question{ID: "package_name", Kind: KindText, DefaultFrom: "project_name", Default: "pkg"}
	assert.Equal(t, "my-app", DefaultFor(q, store))

	// Without the seed present, the static default applies.
	empty := answers.NewStore(nil, nil)
	assert.Equal(t, "pkg", DefaultFor(q, empty))
}

func TestDefaultString(t *testing.T) {
	store := answers.NewStore(nil, nil)

	assert.Equal(t, "yes", DefaultString(Question{Kind: KindBool, Default: true}, store))
	assert.Equal(t, "no", DefaultString(Question{Kind: KindBool, Default: false}, store))
	assert.Equal(t, "ruff,isort", DefaultString(Question{Kind: KindMultiChoice, Default: []string{"ruff", "isort"}}, store))
	assert.Equal(t, "", DefaultString(Question{Kind: KindText}, store))
	assert.Equal(t, "95", DefaultString(Question{Kind: KindNumber, Default: 95}, store))
}
