package strategies

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/shandley/openpretext-strategies/i18n"
	"github.com/shandley/openpretext-strategies/internal/engine"
)

// Result is the outcome of validating a single document.
type Result struct {
	Filename string
	// ID is the extracted identifier. Empty when none was syntactically
	// recoverable; a recovered id participates in cross-document duplicate
	// detection even when the document has other findings.
	ID     string
	Issues Issues
}

// Passed reports whether the document produced zero errors. Warnings do not
// fail a document.
func (r Result) Passed() bool { return !r.Issues.HasErrors() }

// ValidateFile reads and validates a single document. A read failure is a
// per-file finding, not a run-level one; only directory problems abort a run.
func ValidateFile(path string, opt Options) Result {
	filename := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Filename: filename, Issues: Issues{{
			Path:     "/",
			Code:     CodeParseError,
			Severity: Error,
			Message:  i18n.T(CodeParseError, nil),
			Hint:     "failed to read file",
			Cause:    err,
		}}}
	}
	return ValidateBytes(filename, data, opt)
}

// ValidateBytes validates one document given its filename and raw content.
//
// Validation runs in two phases. Phase 1 is a structural gate: input caps,
// parseability and top-level shape; its failures short-circuit the document.
// Phase 2 is a flat sequence of independent field checks that all run and
// append to one list. The filename convention check precedes both phases and
// is independent of content.
func ValidateBytes(filename string, data []byte, opt Options) Result {
	res := Result{Filename: filename}
	var iss Issues

	if !validFilename(filename) {
		iss = AppendIssues(iss, Issue{
			Path:     "/",
			Code:     CodePattern,
			Severity: Error,
			Message:  i18n.T(CodePattern, nil),
			Hint:     "filename must be hyphenated lowercase alphanumerics ending in " + Ext,
			Params:   map[string]any{"filename": filename},
		})
	}

	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		res.Issues = AppendIssues(iss, Issue{
			Path:     "/",
			Code:     CodeTruncated,
			Severity: Error,
			Message:  i18n.T(CodeTruncated, nil),
			Hint:     fmt.Sprintf("document is %d bytes, cap is %d", len(data), opt.MaxBytes),
			Params:   map[string]any{"size": len(data), "max": opt.MaxBytes},
		})
		return res
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		res.Issues = AppendIssues(iss, Issue{
			Path:     "/",
			Code:     CodeParseError,
			Severity: Error,
			Message:  i18n.T(CodeParseError, nil),
			Hint:     err.Error(),
			Cause:    err,
		})
		return res
	}

	obj, ok := v.(map[string]any)
	if !ok {
		res.Issues = AppendIssues(iss, Issue{
			Path:     "/",
			Code:     CodeInvalidType,
			Severity: Error,
			Message:  i18n.T(CodeInvalidType, nil),
			Hint:     "top level must be a JSON object",
		})
		return res
	}

	// A syntactically present id participates in duplicate detection no
	// matter what the remaining checks find.
	res.ID = extractID(obj)

	// The document is well-formed from here on; the token scan cannot hit a
	// parse failure and its findings never mix into the malformed-input case.
	depthIssue, scanIssues := scanTokens(data, opt)
	if depthIssue != nil {
		res.Issues = AppendIssues(iss, *depthIssue)
		return res
	}
	iss = AppendIssues(iss, scanIssues...)

	if opt.FailFast && len(iss) > 0 {
		res.Issues = iss
		return res
	}

	res.Issues = appendFieldIssues(iss, obj, stem(filename), opt)
	return res
}

func extractID(obj map[string]any) string {
	if s, ok := obj[fieldID].(string); ok {
		return s
	}
	return ""
}

// scanTokens runs the duplicate-key/depth scan. A depth violation comes back
// as a structural issue; duplicate keys come back at the configured severity.
func scanTokens(data []byte, opt Options) (*Issue, Issues) {
	if opt.Strictness.OnDuplicateKey == Ignore && opt.MaxDepth <= 0 {
		return nil, nil
	}
	simple, err := engine.Scan(data, engine.ScanOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
	})
	var de *engine.DepthError
	if errors.As(err, &de) {
		return &Issue{
			Path:     de.Path,
			Code:     CodeParseError,
			Severity: Error,
			Message:  i18n.T(CodeParseError, nil),
			Hint:     fmt.Sprintf("nesting exceeds depth cap %d", de.Limit),
			Params:   map[string]any{"max": de.Limit},
		}, nil
	}
	sev := opt.Strictness.OnDuplicateKey
	var out Issues
	for _, si := range simple {
		out = AppendIssues(out, Issue{
			Path:     si.Path,
			Code:     CodeDuplicateKey,
			Severity: sev,
			Message:  i18n.T(CodeDuplicateKey, nil),
			Hint:     si.Message,
			Params:   map[string]any{"key": si.Key},
		})
	}
	return nil, out
}

func toEngineDup(s Severity) engine.DuplicateStrictness {
	switch s {
	case Error:
		return engine.DupError
	case Warn:
		return engine.DupWarn
	default:
		return engine.DupIgnore
	}
}

// appendFieldIssues is phase 2: every check is independent and appends to the
// shared list. Known fields run in registry order, then unknown keys sorted.
// FailFast stops after the first finding of any severity.
func appendFieldIssues(iss Issues, obj map[string]any, fileStem string, opt Options) Issues {
	stopped := false
	add := func(it Issue) {
		iss = AppendIssues(iss, it)
		if opt.FailFast {
			stopped = true
		}
	}

	// id
	if v, present := obj[fieldID]; !present {
		add(requiredIssue("/" + fieldID))
	} else if s, ok := v.(string); !ok {
		add(typeIssue("/"+fieldID, "must be a string"))
	} else if s == "" {
		add(Issue{
			Path:     "/" + fieldID,
			Code:     CodeTooShort,
			Severity: Error,
			Message:  i18n.T(CodeTooShort, nil),
			Hint:     "id must not be empty",
		})
	} else if s != fileStem {
		add(Issue{
			Path:     "/" + fieldID,
			Code:     CodeIDMismatch,
			Severity: Warn,
			Message:  i18n.T(CodeIDMismatch, nil),
			Hint:     fmt.Sprintf("id %q, filename stem %q", s, fileStem),
			Params:   map[string]any{"id": s, "stem": fileStem},
		})
	}
	if stopped {
		return iss
	}

	// name
	if v, present := obj[fieldName]; !present {
		add(requiredIssue("/" + fieldName))
	} else if s, ok := v.(string); !ok {
		add(typeIssue("/"+fieldName, "must be a string"))
	} else if s == "" {
		add(Issue{
			Path:     "/" + fieldName,
			Code:     CodeTooShort,
			Severity: Error,
			Message:  i18n.T(CodeTooShort, nil),
			Hint:     "name must not be empty",
		})
	}
	if stopped {
		return iss
	}

	// supplement: required, empty string allowed
	if v, present := obj[fieldSupplement]; !present {
		add(requiredIssue("/" + fieldSupplement))
	} else if _, ok := v.(string); !ok {
		add(typeIssue("/"+fieldSupplement, "must be a string (may be empty)"))
	}
	if stopped {
		return iss
	}

	// description: optional
	if v, present := obj[fieldDescription]; !present {
		add(optionalIssue("/"+fieldDescription, `consumer defaults description to ""`))
	} else if _, ok := v.(string); !ok {
		add(typeIssue("/"+fieldDescription, "must be a string"))
	}
	if stopped {
		return iss
	}

	// category: optional, closed set
	if v, present := obj[fieldCategory]; !present {
		add(optionalIssue("/"+fieldCategory, `consumer defaults category to "general"`))
	} else if s, ok := v.(string); !ok {
		add(typeIssue("/"+fieldCategory, "must be one of: "+joinCategories()))
	} else if !validCategory(s) {
		add(Issue{
			Path:     "/" + fieldCategory,
			Code:     CodeInvalidEnum,
			Severity: Error,
			Message:  i18n.T(CodeInvalidEnum, nil),
			Hint:     "allowed: " + joinCategories(),
			Params:   map[string]any{"value": s},
		})
	}
	if stopped {
		return iss
	}

	// examples: optional array of {scenario, commands}
	if v, present := obj[fieldExamples]; !present {
		add(optionalIssue("/"+fieldExamples, "consumer defaults examples to []"))
	} else if arr, ok := v.([]any); !ok {
		add(typeIssue("/"+fieldExamples, "must be an array"))
	} else {
		for i, el := range arr {
			base := "/" + fieldExamples + "/" + strconv.Itoa(i)
			elObj, ok := el.(map[string]any)
			if !ok {
				add(typeIssue(base, "example must be an object"))
				if stopped {
					return iss
				}
				continue
			}
			for _, k := range []string{fieldScenario, fieldCommands} {
				if fv, present := elObj[k]; !present {
					add(requiredIssue(base + "/" + k))
				} else if _, ok := fv.(string); !ok {
					add(typeIssue(base+"/"+k, "must be a string"))
				}
				if stopped {
					return iss
				}
			}
		}
	}
	if stopped {
		return iss
	}

	// unknown keys, sorted for deterministic output
	var unknown []string
	for k := range obj {
		if !isKnownField(k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		add(Issue{
			Path:     engine.JoinPointer("", k),
			Code:     CodeUnknownKey,
			Severity: Warn,
			Message:  i18n.T(CodeUnknownKey, nil),
			Hint:     fmt.Sprintf("field %q is ignored by the consumer", k),
			Params:   map[string]any{"key": k},
		})
		if stopped {
			return iss
		}
	}

	return iss
}

func isKnownField(k string) bool {
	for _, f := range knownFields {
		if k == f {
			return true
		}
	}
	return false
}

func requiredIssue(path string) Issue {
	return Issue{
		Path:     path,
		Code:     CodeRequired,
		Severity: Error,
		Message:  i18n.T(CodeRequired, nil),
	}
}

func typeIssue(path, hint string) Issue {
	return Issue{
		Path:     path,
		Code:     CodeInvalidType,
		Severity: Error,
		Message:  i18n.T(CodeInvalidType, nil),
		Hint:     hint,
	}
}

func optionalIssue(path, hint string) Issue {
	return Issue{
		Path:     path,
		Code:     CodeMissingOptional,
		Severity: Warn,
		Message:  i18n.T(CodeMissingOptional, nil),
		Hint:     hint,
	}
}

func joinCategories() string { return strings.Join(categories, ", ") }
