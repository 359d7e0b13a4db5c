// Package fswrite commits a materialized file set to the destination
// directory. Each file is written atomically (temp file in the target
// directory, then rename), so a crash mid-run never leaves a truncated
// target. Per-file failures are recorded and the run continues.
package fswrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/resolve"
)

// filePerm is the mode for generated files.
const filePerm = 0o644

// dirPerm is the mode for created parent directories.
const dirPerm = 0o755

// Entry records the outcome for one target path.
type Entry struct {
	// Path is the target path relative to the destination directory.
	Path string

	// Status is one of the output.Status* values.
	Status string

	// Err is the per-file failure, set only when Status is failed.
	Err error
}

// Report aggregates the outcome of one write run.
type Report struct {
	Entries []Entry
}

// Failed returns the entries that could not be written.
func (r *Report) Failed() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

// Err returns an aggregate write error, or nil when every file landed.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return oerrors.Wrap(oerrors.ErrWrite, fmt.Sprintf("%d of %d files failed", len(failed), len(r.Entries)))
}

// Annotations returns path to status for the file-tree renderer.
func (r *Report) Annotations() map[string]string {
	ann := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		ann[e.Path] = e.Status
	}
	return ann
}

// Plan reports the status each file would receive without touching
// disk, for dry runs. Failure statuses never appear in a plan.
func Plan(targetDir string, files []resolve.File) (*Report, error) {
	report := &Report{Entries: make([]Entry, 0, len(files))}
	for _, f := range files {
		target, err := securePath(targetDir, f.Path)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, Entry{Path: f.Path, Status: planStatus(target, f.Policy)})
	}
	return report, nil
}

// Write commits the file set under targetDir, creating parent
// directories as needed. A failure on one file does not abort the
// rest; the report carries every outcome.
//
// Path traversal outside targetDir aborts the whole run before any
// write, since it indicates a malformed template rather than an I/O
// condition.
func Write(targetDir string, files []resolve.File) (*Report, error) {
	for _, f := range files {
		if _, err := securePath(targetDir, f.Path); err != nil {
			return nil, err
		}
	}

	report := &Report{Entries: make([]Entry, 0, len(files))}
	for _, f := range files {
		target, _ := securePath(targetDir, f.Path)
		status, err := writeOne(target, f)
		if err != nil {
			output.Debug("write failed", "path", f.Path, "error", err)
			report.Entries = append(report.Entries, Entry{Path: f.Path, Status: output.StatusFailed, Err: err})
			continue
		}
		output.Debug("file written", "path", f.Path, "status", status)
		report.Entries = append(report.Entries, Entry{Path: f.Path, Status: status})
	}
	return report, nil
}

// writeOne applies the file's policy and writes atomically.
func writeOne(target string, f resolve.File) (string, error) {
	status := planStatus(target, f.Policy)
	if status == output.StatusSkipped {
		return status, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return "", fmt.Errorf("creating parent directory: %w", err)
	}
	if err := writeAtomic(target, f.Content, filePerm); err != nil {
		return "", err
	}
	return status, nil
}

// planStatus maps a policy and the target's existence to a status.
// Append groups arrive pre-merged, so append reduces to replacing the
// target with the combined content.
func planStatus(target string, policy resolve.Policy) string {
	if _, err := os.Stat(target); err != nil {
		return output.StatusCreated
	}
	switch policy {
	case resolve.PolicySkip:
		return output.StatusSkipped
	case resolve.PolicyAppend:
		return output.StatusMerged
	default:
		return output.StatusOverwritten
	}
}

// securePath joins a relative target path under targetDir, rejecting
// absolute paths and traversal outside the destination.
func securePath(targetDir, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", oerrors.NewTemplateError(fmt.Sprintf("absolute target path %q", rel), rel)
	}
	target := filepath.Join(targetDir, filepath.FromSlash(rel))
	base := filepath.Clean(targetDir)
	if target != base && !strings.HasPrefix(target, base+string(filepath.Separator)) {
		return "", oerrors.NewTemplateError(fmt.Sprintf("target path %q escapes the destination directory", rel), rel)
	}
	return target, nil
}

// writeAtomic writes data via a temp file in the same directory and an
// atomic rename, so the target is never observable half-written.
func writeAtomic(target string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(target)

	tmp, err := os.CreateTemp(dir, ".pyforge-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}

	committed = true
	return nil
}
