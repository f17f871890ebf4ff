package strategies_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	strategies "github.com/shandley/openpretext-strategies"
)

func cleanReport() *strategies.Report {
	return &strategies.Report{
		Dir: "strategies",
		Files: []strategies.Result{
			{Filename: "a-doc.json", ID: "a-doc"},
			{Filename: "b-doc.json", ID: "b-doc"},
		},
		DistinctIDs: 2,
	}
}

func TestWriteText_CleanRun(t *testing.T) {
	var buf bytes.Buffer
	if err := strategies.WriteText(&buf, cleanReport()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"a-doc.json\n  ok\n",
		"b-doc.json\n  ok\n",
		"cross-file checks\n  ok: 2 distinct strategy ids\n",
		"summary: 2 passed, 0 failed, 0 warnings\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteText_ErrorsBeforeWarnings(t *testing.T) {
	rep := &strategies.Report{
		Dir: "strategies",
		Files: []strategies.Result{{
			Filename: "a-doc.json",
			ID:       "a-doc",
			Issues: strategies.Issues{
				// Stored warning-first; rendering still leads with errors.
				{Path: "/zzz", Code: strategies.CodeUnknownKey, Severity: strategies.Warn, Message: "unknown key", Hint: "ignored"},
				{Path: "/name", Code: strategies.CodeRequired, Severity: strategies.Error, Message: "required property missing"},
			},
		}},
		DistinctIDs: 1,
	}
	var buf bytes.Buffer
	if err := strategies.WriteText(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	errLine := strings.Index(out, "error /name: required property missing")
	warnLine := strings.Index(out, "warning /zzz: unknown key (ignored)")
	if errLine < 0 || warnLine < 0 {
		t.Fatalf("missing issue lines in:\n%s", out)
	}
	if errLine > warnLine {
		t.Fatalf("errors must precede warnings:\n%s", out)
	}
	if !strings.Contains(out, "summary: 0 passed, 1 failed, 1 warnings") {
		t.Fatalf("unexpected summary in:\n%s", out)
	}
}

func TestWriteText_CrossFileSection(t *testing.T) {
	rep := cleanReport()
	rep.CrossFile = strategies.Issues{{
		Path:     "/id",
		Code:     strategies.CodeUniqueness,
		Severity: strategies.Error,
		Message:  "duplicate value",
		Hint:     `id "a-doc" declared in: a-doc.json, b-doc.json`,
	}}
	var buf bytes.Buffer
	if err := strategies.WriteText(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "distinct strategy ids") {
		t.Fatalf("distinct-id line must not appear alongside findings:\n%s", out)
	}
	if !strings.Contains(out, `error /id: duplicate value (id "a-doc" declared in: a-doc.json, b-doc.json)`) {
		t.Fatalf("missing cross-file line in:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteText_WriterErrorPropagates(t *testing.T) {
	if err := strategies.WriteText(failWriter{}, cleanReport()); err == nil {
		t.Fatalf("expected the write error to surface")
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	rep := cleanReport()
	rep.Files = append(rep.Files, strategies.Result{
		Filename: "broken-doc.json",
		Issues: strategies.Issues{
			{Path: "/", Code: strategies.CodeParseError, Severity: strategies.Error, Message: "parse error"},
		},
	})

	var buf bytes.Buffer
	if err := strategies.WriteJSON(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if got["dir"] != "strategies" {
		t.Fatalf("unexpected dir %v", got["dir"])
	}
	if got["ok"] != false {
		t.Fatalf("expected ok=false, got %v", got["ok"])
	}
	files, ok := got["files"].([]any)
	if !ok || len(files) != 3 {
		t.Fatalf("unexpected files %v", got["files"])
	}

	first := files[0].(map[string]any)
	if first["filename"] != "a-doc.json" || first["passed"] != true {
		t.Fatalf("unexpected first file %v", first)
	}
	if _, ok := first["issues"].([]any); !ok {
		t.Fatalf("issues must serialize as an array even when empty: %v", first["issues"])
	}

	broken := files[2].(map[string]any)
	if broken["passed"] != false {
		t.Fatalf("unexpected broken file %v", broken)
	}
	if _, present := broken["id"]; present {
		t.Fatalf("empty id must be omitted: %v", broken)
	}
	iss := broken["issues"].([]any)
	if len(iss) != 1 {
		t.Fatalf("unexpected issues %v", broken["issues"])
	}
	it := iss[0].(map[string]any)
	if it["code"] != strategies.CodeParseError || it["severity"] != "error" {
		t.Fatalf("unexpected issue %v", it)
	}

	sum := got["summary"].(map[string]any)
	if sum["passed"] != float64(2) || sum["failed"] != float64(1) {
		t.Fatalf("unexpected summary %v", sum)
	}
	if _, ok := got["cross_file"].([]any); !ok {
		t.Fatalf("cross_file must serialize as an array: %v", got["cross_file"])
	}
}
