package strategies

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts so callers can switch on findings by code).
const (
	CodeParseError   = "parse_error"
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeTooShort     = "too_short"
	CodePattern      = "pattern"
	CodeInvalidEnum  = "invalid_enum"
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	CodeUniqueness   = "uniqueness"
	CodeTruncated    = "truncated"
	// Catalog-specific advisories.
	CodeIDMismatch      = "id_mismatch"
	CodeMissingOptional = "missing_optional"
)

// Severity expresses how a finding affects the outcome of a run. Warnings
// are surfaced in the report but never fail a file; errors do.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warning"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// Issue represents a single validation finding.
type Issue struct {
	Path     string // JSON Pointer (for example: /examples/2/commands).
	Code     string // One of the codes listed above.
	Severity Severity
	Message  string
	Hint     string // Optional: allowed values, expected stems, etc.
	Cause    error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"foo"}) for i18n
	// and machine-readable reports.
	Params map[string]any
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ErrorCount reports the number of error-severity findings.
func (iss Issues) ErrorCount() int {
	n := 0
	for _, it := range iss {
		if it.Severity == Error {
			n++
		}
	}
	return n
}

// WarnCount reports the number of warning-severity findings.
func (iss Issues) WarnCount() int {
	n := 0
	for _, it := range iss {
		if it.Severity == Warn {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding is an error.
func (iss Issues) HasErrors() bool { return iss.ErrorCount() > 0 }

// Errors returns the error-severity findings in order.
func (iss Issues) Errors() Issues { return iss.filter(Error) }

// Warnings returns the warning-severity findings in order.
func (iss Issues) Warnings() Issues { return iss.filter(Warn) }

func (iss Issues) filter(sev Severity) Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == sev {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
