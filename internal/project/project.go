// Package project declares the pyforge question schema and the template
// unit catalog for generated Python projects. Both are loaded once at
// startup and validated before any prompting happens.
package project

import (
	"github.com/pyforge/cli/internal/resolve"
	"github.com/pyforge/cli/internal/schema"
)

// Defaults carries values from the user config that pre-fill the
// corresponding questions.
type Defaults struct {
	Author  string
	Email   string
	License string
}

// Load builds the question schema and the unit catalog. A defect in
// either surfaces here, before the first prompt.
func Load(d Defaults) (*schema.Schema, []resolve.Unit, error) {
	s, err := schema.New(questions(d))
	if err != nil {
		return nil, nil, err
	}
	units, err := units()
	if err != nil {
		return nil, nil, err
	}
	if err := resolve.Validate(units); err != nil {
		return nil, nil, err
	}
	return s, units, nil
}

func questions(d Defaults) []schema.Question {
	minLine, maxLine := 79, 120
	defaultLicense := d.License
	if defaultLicense == "" {
		defaultLicense = "MIT"
	}

	// A selection on either list activates the config_style question.
	toolingSelected := schema.Condition{Any: []schema.Condition{
		{Question: "static_code_checkers"},
		{Question: "formatter"},
	}}

	return []schema.Question{
		{
			ID:      "project_name",
			Prompt:  "What's your python project name",
			Kind:    schema.KindText,
			Pattern: `^[A-Za-z][A-Za-z0-9_-]*$`,
		},
		{
			ID:      "author",
			Prompt:  "What's your name",
			Kind:    schema.KindText,
			Default: d.Author,
		},
		{
			ID:      "author_email",
			Prompt:  "What's your email address",
			Kind:    schema.KindText,
			Default: d.Email,
		},
		{
			ID:     "min_py_version",
			Prompt: "Minimum Python version",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "3.10"}, {Value: "3.11"}, {Value: "3.12"}, {Value: "3.13"},
			},
			Default: "3.12",
		},
		{
			ID:     "layout",
			Prompt: "Project layout",
			Help:   "src keeps the package under src/; flat puts it at the repository root.",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "flat"}, {Value: "src"},
			},
			Default: "src",
		},
		{
			ID:     "build_backend",
			Prompt: "Build backend",
			Help:   "If you don't intend to publish a package, pick none.",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "Hatchling", Label: "Hatchling (https://hatch.pypa.io/)"},
				{Value: "Setuptools", Label: "Setuptools (https://setuptools.pypa.io/)"},
				{Value: "Poetry-core", Label: "Poetry-core (https://python-poetry.org/)"},
				{Value: "PDM-backend", Label: "PDM-backend (https://backend.pdm-project.org/)"},
				{Value: "Flit-core", Label: "Flit-core (https://flit.pypa.io/)"},
				{Value: "none", Label: "No build backend"},
			},
			Default: "Hatchling",
		},
		{
			ID:     "dependency_manager",
			Prompt: "Dependency manager",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "uv", Label: "uv (https://docs.astral.sh/uv/)"},
				{Value: "poetry", Label: "poetry (https://python-poetry.org/)"},
				{Value: "pipenv", Label: "pipenv (https://pipenv.pypa.io/)"},
				{Value: "hatch", Label: "hatch (https://hatch.pypa.io/)"},
			},
			Default: "uv",
		},
		{
			ID:     "static_code_checkers",
			Prompt: "Static code checkers",
			Kind:   schema.KindMultiChoice,
			Options: []schema.Option{
				{Value: "flake8", Label: "flake8 (https://flake8.pycqa.org/)"},
				{Value: "mypy", Label: "mypy (https://mypy-lang.org/)"},
				{Value: "pyright", Label: "pyright (https://microsoft.github.io/pyright/)"},
				{Value: "pylint", Label: "pylint (https://pylint.pycqa.org/)"},
			},
			Default: []string{"flake8", "mypy", "pyright", "pylint"},
		},
		{
			ID:     "formatter",
			Prompt: "Formatters",
			Kind:   schema.KindMultiChoice,
			Options: []schema.Option{
				{Value: "ruff", Label: "ruff (https://docs.astral.sh/ruff/)"},
				{Value: "isort", Label: "isort (https://pycqa.github.io/isort/)"},
				{Value: "black", Label: "black (https://black.readthedocs.io/)"},
			},
			Default: []string{"ruff", "isort"},
		},
		{
			ID:     "config_style",
			Prompt: "Tool configuration style",
			Help:   "pyproject merges tool settings into pyproject.toml; standalone writes one config file per tool.",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "pyproject"}, {Value: "standalone"},
			},
			Default:  "pyproject",
			ActiveIf: []schema.Condition{toolingSelected},
		},
		{
			ID:      "line_length",
			Prompt:  "Maximum line length",
			Kind:    schema.KindNumber,
			Default: 95,
			Min:     &minLine,
			Max:     &maxLine,
		},
		{
			ID:     "spell_checker",
			Prompt: "Spell checker",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "cspell", Label: "cspell (https://cspell.org/)"},
				{Value: "codespell", Label: "codespell (https://github.com/codespell-project/codespell)"},
				{Value: "none", Label: "No spell checker"},
			},
			Default: "cspell",
		},
		{
			ID:     "docs",
			Prompt: "Documentation generator",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "mkdocs", Label: "mkdocs (https://www.mkdocs.org/)"},
				{Value: "sphinx", Label: "sphinx (https://www.sphinx-doc.org/)"},
				{Value: "none", Label: "No documentation generator"},
			},
			Default: "mkdocs",
		},
		{
			ID:     "code_editor",
			Prompt: "Code editor",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "vscode", Label: "VS Code (https://code.visualstudio.com/)"},
				{Value: "none", Label: "No code editor"},
			},
			Default: "vscode",
		},
		{
			ID:      "pre_commit",
			Prompt:  "Set up pre-commit hooks",
			Kind:    schema.KindBool,
			Default: true,
		},
		{
			ID:     "ci",
			Prompt: "Continuous integration",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "github", Label: "GitHub Actions (https://github.com/)"},
				{Value: "none", Label: "No CI"},
			},
			Default: "github",
		},
		{
			ID:      "include_tests",
			Prompt:  "Include a tests folder",
			Kind:    schema.KindBool,
			Default: true,
		},
		{
			ID:      "use_license",
			Prompt:  "Include a license",
			Kind:    schema.KindBool,
			Default: true,
		},
		{
			ID:     "license_type",
			Prompt: "License",
			Kind:   schema.KindChoice,
			Options: []schema.Option{
				{Value: "MIT"},
				{Value: "Apache-2.0"},
				{Value: "GPL-3.0"},
				{Value: "BSD-3-Clause"},
				{Value: "Proprietary"},
			},
			Default:  defaultLicense,
			ActiveIf: []schema.Condition{{Question: "use_license"}},
		},
	}
}
