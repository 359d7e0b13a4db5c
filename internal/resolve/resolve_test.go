package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/cli/internal/answers"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/schema"
)

func testStore(t *testing.T, values map[string]any) *answers.Store {
	t.Helper()
	return answers.NewStore(values, nil)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		want  string
	}{
		{
			name: "duplicate IDs",
			units: []Unit{
				{ID: "readme", Path: "README.md", Policy: PolicySkip},
				{ID: "readme", Path: "README.rst", Policy: PolicySkip},
			},
			want: "duplicate unit ID",
		},
		{
			name:  "empty path",
			units: []Unit{{ID: "readme", Policy: PolicySkip}},
			want:  "empty target path",
		},
		{
			name:  "unknown policy",
			units: []Unit{{ID: "readme", Path: "README.md", Policy: "merge"}},
			want:  "unknown write policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.units)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrSchema))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_MalformedTemplateIsTemplateError(t *testing.T) {
	err := Validate([]Unit{
		{ID: "readme", Path: "README.md", Content: "{{ .name", Policy: PolicySkip},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplate))
}

func TestResolve_ExcludesInactiveUnits(t *testing.T) {
	units := []Unit{
		{ID: "readme", Path: "README.md", Policy: PolicySkip},
		{
			ID:     "license",
			Path:   "LICENSE",
			Policy: PolicySkip,
			When:   []schema.Condition{{Question: "use_license"}},
		},
	}

	store := testStore(t, map[string]any{"use_license": false})

	active, err := Resolve(units, store)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "readme", active[0].ID)
}

func TestResolve_OrdersSharedPathByTag(t *testing.T) {
	// Fragments answered in any order must still concatenate in
	// ascending tag order within the shared target.
	units := []Unit{
		{ID: "pylint-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 20},
		{ID: "readme", Path: "README.md", Policy: PolicySkip},
		{ID: "mypy-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 10},
	}

	active, err := Resolve(units, testStore(t, nil))
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, u := range active {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"mypy-cfg", "pylint-cfg", "readme"}, ids)
}

func TestResolve_ConflictOnSharedNonAppendPath(t *testing.T) {
	units := []Unit{
		{ID: "gitignore-base", Path: ".gitignore", Policy: PolicyOverwrite},
		{ID: "gitignore-docs", Path: ".gitignore", Policy: PolicyAppend},
	}

	_, err := Resolve(units, testStore(t, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConflict))
	assert.Contains(t, err.Error(), "gitignore-base")
	assert.Contains(t, err.Error(), "gitignore-docs")
}

func TestMaterialize_SubstitutesPathAndContent(t *testing.T) {
	units := []Unit{
		{
			ID:      "pkg-init",
			Path:    "{{ snake .project_name }}/__init__.py",
			Content: "\"\"\"{{ .project_name }}.\"\"\"\n",
			Policy:  PolicySkip,
		},
	}

	store := testStore(t, map[string]any{"project_name": "My App"})

	files, err := Materialize(units, store)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "my_app/__init__.py", files[0].Path)
	assert.Equal(t, "\"\"\"My App.\"\"\"\n", string(files[0].Content))
}

func TestMaterialize_MergesAppendGroupInTagOrder(t *testing.T) {
	units := []Unit{
		{ID: "pylint-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 20, Content: "[tool.pylint]\n"},
		{ID: "mypy-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 10, Content: "[tool.mypy]\n"},
	}

	store := testStore(t, nil)

	active, err := Resolve(units, store)
	require.NoError(t, err)

	files, err := Materialize(active, store)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "[tool.mypy]\n[tool.pylint]\n", string(files[0].Content))
	assert.Equal(t, PolicyAppend, files[0].Policy)
}

func TestMaterialize_ConflictOnRenderedPaths(t *testing.T) {
	// Distinct path patterns can still render to the same target.
	units := []Unit{
		{ID: "init-flat", Path: "{{ .package_name }}/__init__.py", Policy: PolicySkip, Content: ""},
		{ID: "init-src", Path: "my_app/__init__.py", Policy: PolicySkip, Content: ""},
	}

	store := testStore(t, map[string]any{"package_name": "my_app"})

	_, err := Materialize(units, store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConflict))
}

func TestMaterialize_UnresolvedTokenIsTemplateError(t *testing.T) {
	units := []Unit{
		{ID: "readme", Path: "README.md", Policy: PolicySkip, Content: "# {{ .no_such_answer }}\n"},
	}

	_, err := Materialize(units, testStore(t, map[string]any{"project_name": "x"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplate))
	assert.Contains(t, err.Error(), "readme")
}

func TestMaterialize_Deterministic(t *testing.T) {
	units := []Unit{
		{ID: "mypy-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 10, Content: "[tool.mypy]\nstrict = true\n"},
		{ID: "ruff-cfg", Path: "pyproject.toml", Policy: PolicyAppend, Tag: 30, Content: "[tool.ruff]\nline-length = {{ .line_length }}\n"},
		{ID: "readme", Path: "README.md", Policy: PolicySkip, Content: "# {{ .project_name }}\n"},
	}

	store := testStore(t, map[string]any{
		"project_name": "my-app",
		"line_length":  95,
	})

	run := func() []File {
		active, err := Resolve(units, store)
		require.NoError(t, err)
		files, err := Materialize(active, store)
		require.NoError(t, err)
		return files
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Content, second[i].Content)
	}
}

func TestTemplateFuncs(t *testing.T) {
	got, err := render("t", `{{ snake "My-App" }} {{ join ", " .tools }} {{ has "mypy" .tools }}`, map[string]any{
		"tools": []string{"mypy", "ruff"},
	})
	require.NoError(t, err)
	assert.Equal(t, "my_app mypy, ruff true", got)
}
