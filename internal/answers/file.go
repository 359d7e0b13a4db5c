package answers

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	oerrors "github.com/pyforge/cli/internal/errors"
)

// LoadFile reads a YAML answer file mapping question IDs to raw values.
// The values are raw: they must still pass the same schema validation as
// interactively collected input.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.NewInputError(
			fmt.Sprintf("cannot read answer file: %v", err),
			path,
			"Pass a YAML file mapping question IDs to values via --answers.",
		)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, oerrors.NewInputError(
			fmt.Sprintf("cannot parse answer file: %v", err),
			path,
			"The answer file must be a YAML mapping of question ID to value.",
		)
	}

	return raw, nil
}

// SaveFile writes the store's active values to a YAML answer file.
// Reloading the file in non-interactive mode reproduces the identical
// store, because inactive questions are re-skipped by their conditions.
func SaveFile(s *Store, path string) error {
	// yaml.v3 marshals maps with sorted keys, so output is deterministic.
	doc := make(map[string]any, len(s.values))
	for _, id := range s.IDs() {
		doc[id], _ = s.Get(id)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// RawString converts a raw answer-file value into the string form the
// schema validator accepts: scalars via Sprint, lists comma-joined.
func RawString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return join(parts)
	case []string:
		return join(val)
	default:
		return fmt.Sprint(val)
	}
}

func join(parts []string) string {
	sorted := make([]string, len(parts))
	copy(sorted, parts)
	sort.Strings(sorted)
	out := ""
	for i, p := range sorted {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}
