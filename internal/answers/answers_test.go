package answers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Immutability(t *testing.T) {
	values := map[string]any{"project_name": "my-app"}
	store := NewStore(values, []string{"license_type"})

	// Mutating the source map must not affect the store.
	values["project_name"] = "changed"

	assert.Equal(t, "my-app", store.GetString("project_name"))
	assert.True(t, store.IsInactive("license_type"))
}

func TestStore_DataExcludesInactive(t *testing.T) {
	store := NewStore(map[string]any{
		"use_license": false,
	}, []string{"license_type"})

	data := store.Data()
	assert.Contains(t, data, "use_license")
	assert.NotContains(t, data, "license_type")
}

func TestStore_TypedGetters(t *testing.T) {
	store := NewStore(map[string]any{
		"project_name": "my-app",
		"pre_commit":   true,
		"formatter":    []string{"ruff", "isort"},
		"line_length":  95,
	}, nil)

	assert.Equal(t, "my-app", store.GetString("project_name"))
	assert.True(t, store.GetBool("pre_commit"))
	assert.Equal(t, []string{"ruff", "isort"}, store.GetStrings("formatter"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("project_name"))
}

func TestSaveLoadFile_RoundTrip(t *testing.T) {
	store := NewStore(map[string]any{
		"project_name": "my-app",
		"use_license":  true,
		"license_type": "MIT",
		"line_length":  95,
		"formatter":    []string{"ruff"},
	}, nil)

	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, SaveFile(store, path))

	raw, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-app", raw["project_name"])
	assert.Equal(t, true, raw["use_license"])
	assert.Equal(t, "MIT", raw["license_type"])
	assert.Equal(t, 95, raw["line_length"])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRawString(t *testing.T) {
	assert.Equal(t, "hello", RawString("hello"))
	assert.Equal(t, "true", RawString(true))
	assert.Equal(t, "95", RawString(95))
	assert.Equal(t, "isort,ruff", RawString([]any{"ruff", "isort"}))
}
