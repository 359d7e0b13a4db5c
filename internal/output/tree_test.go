package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my-app", nil))
}

func TestRenderFileTree_NestedPaths(t *testing.T) {
	out := RenderFileTree("my-app", map[string]string{
		"pyproject.toml":           StatusCreated,
		"README.md":                StatusCreated,
		"src/my_app/__init__.py":   StatusCreated,
		".github/workflows/ci.yml": StatusCreated,
		"tests/__init__.py":        StatusSkipped,
	})

	assert.Contains(t, out, "my-app/")
	assert.Contains(t, out, "pyproject.toml")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "my_app/")
	assert.Contains(t, out, "workflows/")
	assert.Contains(t, out, treeLast)
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("proj", map[string]string{
		"aaa.txt":      "",
		"zzz/file.txt": "",
	})

	lines := strings.Split(out, "\n")
	// Root, then the zzz/ directory, then aaa.txt.
	assert.Contains(t, lines[1], "zzz/")
	assert.Contains(t, lines[3], "aaa.txt")
}

func TestFormatFileLine_Alignment(t *testing.T) {
	line := FormatFileLine("README.md", StatusCreated)
	assert.Contains(t, line, "README.md")
	assert.Contains(t, line, StatusCreated)
}
