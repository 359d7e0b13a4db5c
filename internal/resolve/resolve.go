// Package resolve selects the active template units for a completed
// answer store and materializes them into concrete files. Resolution
// and rendering are pure: no filesystem access happens here, and the
// same store always yields the same file set.
package resolve

import (
	"fmt"
	"sort"

	"github.com/pyforge/cli/internal/answers"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/schema"
)

// Policy is the conflict rule applied when a target path already exists.
type Policy string

const (
	// PolicySkip leaves an existing target untouched.
	PolicySkip Policy = "skip"

	// PolicyOverwrite replaces an existing target fully.
	PolicyOverwrite Policy = "overwrite"

	// PolicyAppend merges this unit's content with other units sharing
	// the target path, concatenated in ascending tag order.
	PolicyAppend Policy = "append"
)

// Unit is a conditionally included file or fragment definition. The
// unit set is loaded once at startup and is read-only afterwards.
type Unit struct {
	// ID uniquely identifies the unit in conflict reports.
	ID string

	// Path is the target path pattern, relative to the destination
	// directory. Substitution tokens resolve against the answer store.
	Path string

	// Content is the template text for the unit's content.
	Content string

	// Policy is the write policy when the target already exists.
	Policy Policy

	// Tag orders units sharing a target path; fragments with lower
	// tags render first.
	Tag int

	// When lists the inclusion conditions. All must hold for the unit
	// to be active; an empty list means always active.
	When []schema.Condition
}

// File is a fully rendered (path, content, policy) triple, ready for
// the tree writer.
type File struct {
	Path    string
	Content []byte
	Policy  Policy
}

// Validate checks the unit set for defects that would otherwise only
// surface mid-generation: duplicate IDs, empty paths, unknown policies,
// and templates that fail to parse.
func Validate(units []Unit) error {
	seen := make(map[string]bool, len(units))
	for _, u := range units {
		if u.ID == "" {
			return oerrors.NewSchemaError("unit with empty ID", u.Path, "")
		}
		if seen[u.ID] {
			return oerrors.NewSchemaError(fmt.Sprintf("duplicate unit ID %q", u.ID), u.ID, "")
		}
		seen[u.ID] = true

		if u.Path == "" {
			return oerrors.NewSchemaError("unit with empty target path", u.ID, "")
		}

		switch u.Policy {
		case PolicySkip, PolicyOverwrite, PolicyAppend:
		default:
			return oerrors.NewSchemaError(fmt.Sprintf("unknown write policy %q", u.Policy), u.ID, "")
		}

		if _, err := parseTemplate(u.ID+":path", u.Path); err != nil {
			return err
		}
		if _, err := parseTemplate(u.ID, u.Content); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the active units in a stable order: declaration order
// primarily, ascending tag within units sharing a target path pattern.
// Units sharing a path with any non-append policy are a resolution
// conflict, reported before anything is rendered or written.
func Resolve(units []Unit, store *answers.Store) ([]Unit, error) {
	var active []Unit
	for _, u := range units {
		if !activeUnit(u, store) {
			output.Debug("unit excluded", "id", u.ID)
			continue
		}
		active = append(active, u)
	}

	// Group shared-path units at their first occurrence, then order the
	// group by tag. Declaration order breaks tag ties.
	firstIdx := make(map[string]int, len(active))
	declIdx := make(map[string]int, len(active))
	for i, u := range active {
		declIdx[u.ID] = i
		if _, ok := firstIdx[u.Path]; !ok {
			firstIdx[u.Path] = i
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if a.Path != b.Path {
			return firstIdx[a.Path] < firstIdx[b.Path]
		}
		if a.Tag != b.Tag {
			return a.Tag < b.Tag
		}
		return declIdx[a.ID] < declIdx[b.ID]
	})

	if err := checkConflicts(active, unitPath); err != nil {
		return nil, err
	}
	return active, nil
}

func activeUnit(u Unit, store *answers.Store) bool {
	for _, cond := range u.When {
		if !cond.Eval(store) {
			return false
		}
	}
	return true
}

func unitPath(u Unit) string { return u.Path }

// checkConflicts rejects any path claimed by more than one unit unless
// every claimant uses the append policy. Both offending unit IDs are
// reported.
func checkConflicts(units []Unit, path func(Unit) string) error {
	byPath := make(map[string][]Unit, len(units))
	for _, u := range units {
		byPath[path(u)] = append(byPath[path(u)], u)
	}
	for p, group := range byPath {
		if len(group) < 2 {
			continue
		}
		for _, u := range group {
			if u.Policy != PolicyAppend {
				other := group[0]
				if other.ID == u.ID {
					other = group[1]
				}
				return oerrors.NewConflictError(p, u.ID, other.ID)
			}
		}
	}
	return nil
}

// Materialize renders the resolved units against the store and merges
// append groups into single files. The result is a pure function of
// the store and the unit set. Unresolved substitution tokens surface
// as template errors naming the offending unit.
func Materialize(units []Unit, store *answers.Store) ([]File, error) {
	data := store.Data()

	type rendered struct {
		unit    Unit
		path    string
		content []byte
	}

	results := make([]rendered, 0, len(units))
	for _, u := range units {
		p, err := render(u.ID+":path", u.Path, data)
		if err != nil {
			return nil, err
		}
		c, err := render(u.ID, u.Content, data)
		if err != nil {
			return nil, err
		}
		results = append(results, rendered{unit: u, path: p, content: []byte(c)})
	}

	// Path patterns from distinct units may render to the same target.
	// Re-check on the rendered paths with the same append-only rule.
	resolvedUnits := make([]Unit, len(results))
	for i, r := range results {
		u := r.unit
		u.Path = r.path
		resolvedUnits[i] = u
	}
	if err := checkConflicts(resolvedUnits, unitPath); err != nil {
		return nil, err
	}

	// Merge append groups in resolver order. Fragments carry their own
	// trailing newlines; no separator is invented here.
	var files []File
	index := make(map[string]int, len(results))
	for _, r := range results {
		if i, ok := index[r.path]; ok {
			files[i].Content = append(files[i].Content, r.content...)
			continue
		}
		index[r.path] = len(files)
		files = append(files, File{Path: r.path, Content: r.content, Policy: r.unit.Policy})
	}

	output.Debug("materialized file set", "files", len(files))
	return files, nil
}
