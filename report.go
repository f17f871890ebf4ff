package strategies

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// WriteText renders the human-readable report: one section per file in
// discovery order (errors first, then warnings, or a single ok line), the
// cross-file section, and the summary line.
func WriteText(w io.Writer, rep *Report) error {
	p := &printer{w: w}
	for _, f := range rep.Files {
		p.printf("%s\n", f.Filename)
		if len(f.Issues) == 0 {
			p.printf("  ok\n")
			continue
		}
		for _, it := range f.Issues.Errors() {
			p.printf("  %s\n", issueLine(it))
		}
		for _, it := range f.Issues.Warnings() {
			p.printf("  %s\n", issueLine(it))
		}
	}

	p.printf("cross-file checks\n")
	if len(rep.CrossFile) == 0 {
		p.printf("  ok: %d distinct strategy ids\n", rep.DistinctIDs)
	} else {
		for _, it := range rep.CrossFile {
			p.printf("  %s\n", issueLine(it))
		}
	}

	p.printf("summary: %d passed, %d failed, %d warnings\n",
		rep.Passed(), rep.Failed(), rep.TotalWarnings())
	return p.err
}

func issueLine(it Issue) string {
	s := fmt.Sprintf("%s %s: %s", it.Severity, it.Path, it.Message)
	if it.Hint != "" {
		s += " (" + it.Hint + ")"
	}
	return s
}

// printer defers the first write error so report rendering reads linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Wire shapes for the JSON report. Causes are deliberately absent: they are
// Go errors for callers, not part of the machine-readable surface.
type jsonIssue struct {
	Path     string         `json:"path"`
	Code     string         `json:"code"`
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Hint     string         `json:"hint,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

type jsonFile struct {
	Filename string      `json:"filename"`
	ID       string      `json:"id,omitempty"`
	Passed   bool        `json:"passed"`
	Issues   []jsonIssue `json:"issues"`
}

type jsonSummary struct {
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

type jsonReport struct {
	Dir         string      `json:"dir"`
	Files       []jsonFile  `json:"files"`
	CrossFile   []jsonIssue `json:"cross_file"`
	DistinctIDs int         `json:"distinct_ids"`
	Summary     jsonSummary `json:"summary"`
	Ok          bool        `json:"ok"`
}

// WriteJSON renders the report for machines. The exit code stays the primary
// signal; this is a convenience for tooling around the catalog.
func WriteJSON(w io.Writer, rep *Report) error {
	out := jsonReport{
		Dir:         rep.Dir,
		Files:       make([]jsonFile, 0, len(rep.Files)),
		CrossFile:   toJSONIssues(rep.CrossFile),
		DistinctIDs: rep.DistinctIDs,
		Summary: jsonSummary{
			Passed:   rep.Passed(),
			Failed:   rep.Failed(),
			Warnings: rep.TotalWarnings(),
			Errors:   rep.TotalErrors(),
		},
		Ok: rep.Ok(),
	}
	for _, f := range rep.Files {
		out.Files = append(out.Files, jsonFile{
			Filename: f.Filename,
			ID:       f.ID,
			Passed:   f.Passed(),
			Issues:   toJSONIssues(f.Issues),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func toJSONIssues(iss Issues) []jsonIssue {
	out := make([]jsonIssue, 0, len(iss))
	for _, it := range iss {
		out = append(out, jsonIssue{
			Path:     it.Path,
			Code:     it.Code,
			Severity: it.Severity.String(),
			Message:  it.Message,
			Hint:     it.Hint,
			Params:   it.Params,
		})
	}
	return out
}
