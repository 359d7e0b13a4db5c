package project

import (
	"embed"
	"fmt"

	"github.com/pyforge/cli/internal/resolve"
	"github.com/pyforge/cli/internal/schema"
)

//go:embed templates
var templateFS embed.FS

// Append tags for pyproject.toml fragments. The base table set renders
// first; tool tables follow in a fixed order no matter which questions
// put them there.
const (
	tagPyprojectBase    = 0
	tagPyprojectMypy    = 10
	tagPyprojectPyright = 15
	tagPyprojectPylint  = 20
	tagPyprojectRuff    = 30
	tagPyprojectIsort   = 40
	tagPyprojectPytest  = 50
)

// unitDef ties a unit to its embedded template file.
type unitDef struct {
	id       string
	path     string
	template string
	policy   resolve.Policy
	tag      int
	when     []schema.Condition
}

func pyprojectStyle() schema.Condition {
	return schema.Condition{Question: "config_style", Equals: "pyproject"}
}

func standaloneStyle() schema.Condition {
	return schema.Condition{Question: "config_style", Equals: "standalone"}
}

func checker(name string) schema.Condition {
	return schema.Condition{Question: "static_code_checkers", Contains: name}
}

func formatter(name string) schema.Condition {
	return schema.Condition{Question: "formatter", Contains: name}
}

func catalog() []unitDef {
	return []unitDef{
		{
			id:       "pyproject-base",
			path:     "pyproject.toml",
			template: "pyproject.toml.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectBase,
		},
		{
			id:       "pyproject-mypy",
			path:     "pyproject.toml",
			template: "pyproject_mypy.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectMypy,
			when:     []schema.Condition{checker("mypy"), pyprojectStyle()},
		},
		{
			id:       "pyproject-pyright",
			path:     "pyproject.toml",
			template: "pyproject_pyright.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectPyright,
			when:     []schema.Condition{checker("pyright"), pyprojectStyle()},
		},
		{
			id:       "pyproject-pylint",
			path:     "pyproject.toml",
			template: "pyproject_pylint.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectPylint,
			when:     []schema.Condition{checker("pylint"), pyprojectStyle()},
		},
		{
			id:       "pyproject-ruff",
			path:     "pyproject.toml",
			template: "pyproject_ruff.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectRuff,
			when:     []schema.Condition{formatter("ruff"), pyprojectStyle()},
		},
		{
			id:       "pyproject-isort",
			path:     "pyproject.toml",
			template: "pyproject_isort.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectIsort,
			when:     []schema.Condition{formatter("isort"), pyprojectStyle()},
		},
		{
			id:       "pyproject-pytest",
			path:     "pyproject.toml",
			template: "pyproject_pytest.tmpl",
			policy:   resolve.PolicyAppend,
			tag:      tagPyprojectPytest,
			when: []schema.Condition{
				{Question: "include_tests"},
				pyprojectStyle(),
			},
		},
		{
			id:       "readme",
			path:     "README.md",
			template: "README.md.tmpl",
			policy:   resolve.PolicySkip,
		},
		{
			id:       "gitignore",
			path:     ".gitignore",
			template: "gitignore.tmpl",
			policy:   resolve.PolicyOverwrite,
		},
		{
			id:       "license-mit",
			path:     "LICENSE",
			template: "license_mit.tmpl",
			policy:   resolve.PolicyOverwrite,
			when:     []schema.Condition{{Question: "license_type", Equals: "MIT"}},
		},
		{
			id:       "license-apache",
			path:     "LICENSE",
			template: "license_apache.tmpl",
			policy:   resolve.PolicyOverwrite,
			when:     []schema.Condition{{Question: "license_type", Equals: "Apache-2.0"}},
		},
		{
			id:       "license-gpl3",
			path:     "LICENSE",
			template: "license_gpl3.tmpl",
			policy:   resolve.PolicyOverwrite,
			when:     []schema.Condition{{Question: "license_type", Equals: "GPL-3.0"}},
		},
		{
			id:       "license-bsd3",
			path:     "LICENSE",
			template: "license_bsd3.tmpl",
			policy:   resolve.PolicyOverwrite,
			when:     []schema.Condition{{Question: "license_type", Equals: "BSD-3-Clause"}},
		},
		{
			id:       "license-proprietary",
			path:     "LICENSE",
			template: "license_proprietary.tmpl",
			policy:   resolve.PolicyOverwrite,
			when:     []schema.Condition{{Question: "license_type", Equals: "Proprietary"}},
		},
		{
			id:       "flake8-config",
			path:     ".flake8",
			template: "flake8.tmpl",
			policy:   resolve.PolicySkip,
			// flake8 cannot read pyproject.toml, so its config file is
			// written for either style.
			when: []schema.Condition{checker("flake8")},
		},
		{
			id:       "mypy-config",
			path:     ".mypy.ini",
			template: "mypy.ini.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{checker("mypy"), standaloneStyle()},
		},
		{
			id:       "pyright-config",
			path:     "pyrightconfig.json",
			template: "pyrightconfig.json.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{checker("pyright"), standaloneStyle()},
		},
		{
			id:       "pylint-config",
			path:     ".pylintrc",
			template: "pylintrc.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{checker("pylint"), standaloneStyle()},
		},
		{
			id:       "ruff-config",
			path:     "ruff.toml",
			template: "ruff.toml.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{formatter("ruff"), standaloneStyle()},
		},
		{
			id:       "isort-config",
			path:     ".isort.cfg",
			template: "isort.cfg.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{formatter("isort"), standaloneStyle()},
		},
		{
			id:       "cspell-config",
			path:     "cspell.json",
			template: "cspell.json.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "spell_checker", Equals: "cspell"}},
		},
		{
			id:       "package-init-flat",
			path:     "{{ snake .project_name }}/__init__.py",
			template: "package_init.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "layout", Equals: "flat"}},
		},
		{
			id:       "package-init-src",
			path:     "src/{{ snake .project_name }}/__init__.py",
			template: "package_init.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "layout", Equals: "src"}},
		},
		{
			id:       "tests-init",
			path:     "tests/__init__.py",
			template: "package_init.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "include_tests"}},
		},
		{
			id:       "pytest-config",
			path:     "tests/pytest.ini",
			template: "pytest.ini.tmpl",
			policy:   resolve.PolicySkip,
			when: []schema.Condition{
				{Question: "include_tests"},
				standaloneStyle(),
			},
		},
		{
			id:       "mkdocs-config",
			path:     "mkdocs.yml",
			template: "mkdocs.yml.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "docs", Equals: "mkdocs"}},
		},
		{
			id:       "docs-index",
			path:     "docs/index.md",
			template: "docs_index.md.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "docs", Equals: "mkdocs"}},
		},
		{
			id:       "vscode-workspace",
			path:     "{{ .project_name }}.code-workspace",
			template: "code_workspace.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "code_editor", Equals: "vscode"}},
		},
		{
			id:       "github-ci",
			path:     ".github/workflows/ci.yml",
			template: "github_ci.yml.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "ci", Equals: "github"}},
		},
		{
			id:       "github-release",
			path:     ".github/workflows/release.yml",
			template: "github_release.yml.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "ci", Equals: "github"}},
		},
		{
			id:       "pre-commit-config",
			path:     ".pre-commit-config.yaml",
			template: "pre_commit.yaml.tmpl",
			policy:   resolve.PolicySkip,
			when:     []schema.Condition{{Question: "pre_commit"}},
		},
	}
}

// units materializes the catalog with each unit's embedded template
// content.
func units() ([]resolve.Unit, error) {
	defs := catalog()
	out := make([]resolve.Unit, 0, len(defs))
	for _, d := range defs {
		content, err := templateFS.ReadFile("templates/" + d.template)
		if err != nil {
			return nil, fmt.Errorf("reading embedded template for unit %q: %w", d.id, err)
		}
		out = append(out, resolve.Unit{
			ID:      d.id,
			Path:    d.path,
			Content: string(content),
			Policy:  d.policy,
			Tag:     d.tag,
			When:    d.when,
		})
	}
	return out, nil
}
