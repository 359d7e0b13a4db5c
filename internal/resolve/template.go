package resolve

import (
	"strconv"
	"strings"
	"text/template"
	"time"

	oerrors "github.com/pyforge/cli/internal/errors"
)

// funcs are the helpers available to unit templates.
var funcs = template.FuncMap{
	// snake turns a project name into an importable package name.
	"snake": func(s string) string {
		return strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(strings.ToLower(s))
	},

	// has reports whether a multi-choice answer contains a value.
	"has": func(want string, values []string) bool {
		for _, v := range values {
			if v == want {
				return true
			}
		}
		return false
	},

	// join concatenates a multi-choice answer with a separator.
	"join": func(sep string, values []string) string {
		return strings.Join(values, sep)
	},

	// quotelist renders a multi-choice answer as quoted, comma-separated
	// list elements for TOML and JSON arrays.
	"quotelist": func(values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = strconv.Quote(v)
		}
		return strings.Join(quoted, ", ")
	},

	// year is the current year, for license headers.
	"year": func() int {
		return time.Now().Year()
	},
}

// parseTemplate compiles a unit template. Any token referencing an
// identifier absent from the answer store fails the render instead of
// emitting "<no value>".
func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, templateErr(name, err)
	}
	return tmpl, nil
}

func templateErr(name string, err error) error {
	return oerrors.NewTemplateError(err.Error(), name)
}

// render executes a unit template against the answer data.
func render(name, text string, data map[string]any) (string, error) {
	tmpl, err := parseTemplate(name, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", templateErr(name, err)
	}
	return b.String(), nil
}
