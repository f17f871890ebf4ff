package strategies

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoDocuments marks a run against a directory with zero candidate files.
// It is fatal for the run: nothing was validated.
var ErrNoDocuments = errors.New("no strategy documents found")

// Discover lists candidate documents in dir: regular entries whose name ends
// in Ext. os.ReadDir returns entries sorted by name, which fixes the
// processing and reporting order for the whole run.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read strategies dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), Ext) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Report is the aggregate outcome of one validation pass. The runner owns it
// and passes it to the reporter; nothing in it is shared or mutated after
// ValidateDir returns.
type Report struct {
	Dir         string
	Files       []Result
	CrossFile   Issues
	DistinctIDs int
}

// Passed reports how many files produced zero errors.
func (r *Report) Passed() int {
	n := 0
	for _, f := range r.Files {
		if f.Passed() {
			n++
		}
	}
	return n
}

// Failed reports how many files produced at least one error.
func (r *Report) Failed() int { return len(r.Files) - r.Passed() }

// TotalErrors counts error findings across files and the cross-file check.
func (r *Report) TotalErrors() int {
	n := r.CrossFile.ErrorCount()
	for _, f := range r.Files {
		n += f.Issues.ErrorCount()
	}
	return n
}

// TotalWarnings counts warning findings across files and the cross-file check.
func (r *Report) TotalWarnings() int {
	n := r.CrossFile.WarnCount()
	for _, f := range r.Files {
		n += f.Issues.WarnCount()
	}
	return n
}

// Ok reports whether the run found zero errors. Warnings never fail a run.
func (r *Report) Ok() bool { return r.TotalErrors() == 0 }

// ValidateDir runs the full pass over dir: discovery, per-file validation in
// sorted order, then the cross-document identifier check. The returned error
// is reserved for the fatal run-level conditions (unreadable directory, zero
// candidates); every other finding travels inside the Report.
func ValidateDir(dir string, opt Options) (*Report, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}

	rep := &Report{Dir: dir}
	idx := NewIDIndex()
	for _, name := range files {
		res := ValidateFile(filepath.Join(dir, name), opt)
		rep.Files = append(rep.Files, res)
		idx.Add(res.ID, res.Filename)
	}
	rep.CrossFile = idx.Duplicates()
	rep.DistinctIDs = idx.Distinct()
	return rep, nil
}
