package project

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/cli/internal/answers"
	"github.com/pyforge/cli/internal/prompt"
	"github.com/pyforge/cli/internal/resolve"
	"github.com/pyforge/cli/internal/wizard"
)

func defaultAnswers() map[string]any {
	return map[string]any{
		"project_name":         "my-app",
		"author":               "Ada Lovelace",
		"author_email":         "ada@example.com",
		"min_py_version":       "3.12",
		"layout":               "src",
		"build_backend":        "Hatchling",
		"dependency_manager":   "uv",
		"static_code_checkers": []string{"flake8", "mypy", "pyright", "pylint"},
		"formatter":            []string{"ruff", "isort"},
		"config_style":         "pyproject",
		"line_length":          95,
		"spell_checker":        "cspell",
		"docs":                 "mkdocs",
		"code_editor":          "vscode",
		"pre_commit":           true,
		"ci":                   "github",
		"include_tests":        true,
		"use_license":          true,
		"license_type":         "MIT",
	}
}

func generate(t *testing.T, values map[string]any, inactive []string) []resolve.File {
	t.Helper()
	_, units, err := Load(Defaults{})
	require.NoError(t, err)

	store := answers.NewStore(values, inactive)
	active, err := resolve.Resolve(units, store)
	require.NoError(t, err)
	files, err := resolve.Materialize(active, store)
	require.NoError(t, err)
	return files
}

func fileByPath(t *testing.T, files []resolve.File, path string) resolve.File {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no materialized file at %s", path)
	return resolve.File{}
}

func hasPath(files []resolve.File, path string) bool {
	for _, f := range files {
		if f.Path == path {
			return true
		}
	}
	return false
}

func TestLoad_CatalogIsValid(t *testing.T) {
	s, units, err := Load(Defaults{Author: "Ada", Email: "ada@example.com", License: "Apache-2.0"})
	require.NoError(t, err)
	assert.NotZero(t, s.Len())
	assert.NotEmpty(t, units)

	// Every unit condition must reference a declared question.
	for _, u := range units {
		for _, cond := range u.When {
			refs := []string{cond.Question}
			if len(cond.Any) > 0 {
				refs = nil
				for _, sub := range cond.Any {
					refs = append(refs, sub.Question)
				}
			}
			for _, ref := range refs {
				assert.True(t, s.Has(ref), "unit %s references unknown question %s", u.ID, ref)
			}
		}
	}
}

func TestLoad_BadDefaultLicenseIsSchemaError(t *testing.T) {
	_, _, err := Load(Defaults{License: "WTFPL"})
	require.Error(t, err)
}

func TestGenerate_PyprojectMergesToolTablesInOrder(t *testing.T) {
	files := generate(t, defaultAnswers(), nil)

	content := string(fileByPath(t, files, "pyproject.toml").Content)
	assert.Contains(t, content, `name = "my-app"`)
	assert.Contains(t, content, `requires-python = ">=3.12"`)
	assert.Contains(t, content, `license = "MIT"`)
	assert.Contains(t, content, `requires = ["hatchling"]`)
	assert.Contains(t, content, `static-checkers = ["flake8", "mypy", "pyright", "pylint"]`)

	// Tool tables follow the base in fixed tag order.
	mypy := strings.Index(content, "[tool.mypy]")
	pyright := strings.Index(content, "[tool.pyright]")
	pylint := strings.Index(content, "[tool.pylint]")
	ruff := strings.Index(content, "[tool.ruff]")
	isort := strings.Index(content, "[tool.isort]")
	pytest := strings.Index(content, "[tool.pytest.ini_options]")
	for _, idx := range []int{mypy, pyright, pylint, ruff, isort, pytest} {
		assert.Greater(t, idx, 0)
	}
	assert.Less(t, mypy, pyright)
	assert.Less(t, pyright, pylint)
	assert.Less(t, pylint, ruff)
	assert.Less(t, ruff, isort)
	assert.Less(t, isort, pytest)

	// Merged config means no standalone config files beyond flake8,
	// which cannot read pyproject.toml.
	assert.True(t, hasPath(files, ".flake8"))
	assert.False(t, hasPath(files, ".mypy.ini"))
	assert.False(t, hasPath(files, "ruff.toml"))
	assert.False(t, hasPath(files, "tests/pytest.ini"))
}

func TestGenerate_StandaloneConfigs(t *testing.T) {
	values := defaultAnswers()
	values["config_style"] = "standalone"
	files := generate(t, values, nil)

	for _, path := range []string{".flake8", ".mypy.ini", "pyrightconfig.json", ".pylintrc", "ruff.toml", ".isort.cfg", "tests/pytest.ini"} {
		assert.True(t, hasPath(files, path), "missing %s", path)
	}

	content := string(fileByPath(t, files, "pyproject.toml").Content)
	assert.NotContains(t, content, "[tool.mypy]")
	assert.NotContains(t, content, "[tool.ruff]")

	assert.Contains(t, string(fileByPath(t, files, ".flake8").Content), "max-line-length = 95")
}

func TestGenerate_NoLicenseExcludesLicenseUnit(t *testing.T) {
	values := defaultAnswers()
	values["use_license"] = false
	delete(values, "license_type")
	files := generate(t, values, []string{"license_type"})

	assert.False(t, hasPath(files, "LICENSE"))
	assert.NotContains(t, string(fileByPath(t, files, "pyproject.toml").Content), "license =")
}

func TestGenerate_LayoutSelectsPackagePath(t *testing.T) {
	src := generate(t, defaultAnswers(), nil)
	assert.True(t, hasPath(src, "src/my_app/__init__.py"))
	assert.False(t, hasPath(src, "my_app/__init__.py"))

	values := defaultAnswers()
	values["layout"] = "flat"
	flat := generate(t, values, nil)
	assert.True(t, hasPath(flat, "my_app/__init__.py"))
	assert.False(t, hasPath(flat, "src/my_app/__init__.py"))
}

func TestGenerate_CIMatrixFollowsMinPythonVersion(t *testing.T) {
	values := defaultAnswers()
	values["min_py_version"] = "3.11"
	files := generate(t, values, nil)

	ci := string(fileByPath(t, files, ".github/workflows/ci.yml").Content)
	assert.Contains(t, ci, `python-version: ["3.11", "3.12", "3.13"]`)
	assert.Contains(t, ci, "runs-on: ${{ matrix.os }}")

	release := string(fileByPath(t, files, ".github/workflows/release.yml").Content)
	assert.Contains(t, release, "https://pypi.org/project/my-app/")
}

func TestGenerate_LicenseTexts(t *testing.T) {
	for license, marker := range map[string]string{
		"MIT":          "MIT License",
		"Apache-2.0":   "Apache License",
		"GPL-3.0":      "GNU GENERAL PUBLIC LICENSE",
		"BSD-3-Clause": "BSD 3-Clause License",
		"Proprietary":  "All rights reserved",
	} {
		values := defaultAnswers()
		values["license_type"] = license
		files := generate(t, values, nil)
		assert.Contains(t, string(fileByPath(t, files, "LICENSE").Content), marker, license)
	}
}

func TestGenerate_CodespellHookInPreCommit(t *testing.T) {
	values := defaultAnswers()
	values["spell_checker"] = "codespell"
	files := generate(t, values, nil)

	assert.Contains(t, string(fileByPath(t, files, ".pre-commit-config.yaml").Content), "codespell")
	assert.False(t, hasPath(files, "cspell.json"))

	files = generate(t, defaultAnswers(), nil)
	assert.NotContains(t, string(fileByPath(t, files, ".pre-commit-config.yaml").Content), "codespell")
	assert.True(t, hasPath(files, "cspell.json"))
}

func TestCollect_RealSchemaFromAnswerFile(t *testing.T) {
	// The full schema collected from a file of raw answers must match
	// the store the generator expects, including the inactive marker
	// for config_style when no tooling is selected.
	s, _, err := Load(Defaults{Author: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	raw := map[string]any{
		"project_name":         "my-app",
		"static_code_checkers": []any{},
		"formatter":            []any{},
		"use_license":          false,
	}

	store, err := wizard.Collect(context.Background(), s, prompt.NewAnswerFile(raw))
	require.NoError(t, err)

	assert.True(t, store.IsInactive("config_style"))
	assert.True(t, store.IsInactive("license_type"))
	assert.Equal(t, "Ada", store.GetString("author"))

	lineLength, ok := store.Get("line_length")
	require.True(t, ok)
	assert.Equal(t, 95, lineLength)
}
