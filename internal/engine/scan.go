package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Token-level scan over a raw document: duplicate object keys and nesting
// depth are only observable before Unmarshal collapses the input, so they are
// checked here in one streaming pass.

// DuplicateStrictness controls duplicate key handling during the scan.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Key     string // Offending object key, when the issue concerns one.
	Message string
}

// DepthError reports nesting beyond the configured cap. It aborts the scan;
// the caller treats it like a structural failure of the document.
type DepthError struct {
	Path  string
	Limit int
}

func (e *DepthError) Error() string {
	return "max depth exceeded at " + e.Path + " (limit " + strconv.Itoa(e.Limit) + ")"
}

// ScanOptions configures a document scan.
type ScanOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int // 0 disables the depth cap.
}

type containerKind int

const (
	kindObj containerKind = iota
	kindArr
)

type scanFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	pendingKey   string
	nextIndex    int
	path         string
}

// Scan walks the document tokens once, collecting duplicate-key issues and
// enforcing the depth cap. Malformed input ends the scan quietly; reporting
// the parse failure is the caller's concern. The only non-nil error returned
// is *DepthError.
func Scan(data []byte, opt ScanOptions) ([]SimpleIssue, error) {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth <= 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []scanFrame

	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArr {
			p := JoinPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		return JoinPointer(top.path, top.pendingKey)
	}
	closeValue := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObj && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF is the normal end; any other failure surfaces later as
			// a parse error when the document is unmarshaled.
			break
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				p := valuePath()
				kind := kindObj
				var keys map[string]struct{}
				expecting := true
				if v == '[' {
					kind = kindArr
					expecting = false
				} else {
					keys = make(map[string]struct{})
				}
				stack = append(stack, scanFrame{kind: kind, keys: keys, expectingKey: expecting, path: p})
				if opt.MaxDepth > 0 && len(stack) > opt.MaxDepth {
					return issues, &DepthError{Path: NormalizePointer(p), Limit: opt.MaxDepth}
				}
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				closeValue()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObj && top.expectingKey {
					if opt.OnDuplicate != DupIgnore {
						if _, seen := top.keys[v]; seen {
							issues = append(issues, SimpleIssue{
								Code:    "duplicate_key",
								Path:    NormalizePointer(JoinPointer(top.path, v)),
								Key:     v,
								Message: "key '" + v + "' duplicated",
							})
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					top.pendingKey = v
					continue
				}
			}
			_ = valuePath() // consume the array slot, if any
			closeValue()
		default:
			// bool, json.Number, float64, nil
			_ = valuePath()
			closeValue()
		}
	}

	return issues, nil
}

// ScanReader is the io.Reader variant of Scan (consumes the reader fully).
func ScanReader(r io.Reader, opt ScanOptions) ([]SimpleIssue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Scan(data, opt)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointerToken escapes a single JSON Pointer reference token (~ and /).
func EscapePointerToken(s string) string { return pointerEscaper.Replace(s) }

// JoinPointer appends a reference token to a JSON Pointer base.
func JoinPointer(base, token string) string {
	if base == "" {
		return "/" + EscapePointerToken(token)
	}
	return base + "/" + EscapePointerToken(token)
}

// NormalizePointer maps the empty pointer onto the document root.
func NormalizePointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
