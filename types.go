package strategies

// Strictness configures enforcement for lint-level findings that sit outside
// the document schema itself.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error for duplicated JSON keys.
}

// Options bundles validation options. The zero value runs the schema checks
// alone: no size or depth caps, duplicate keys ignored, every check collected.
type Options struct {
	Strictness Strictness
	MaxDepth   int   // Maximum nesting depth; 0 disables the cap.
	MaxBytes   int64 // Maximum document size in bytes; 0 disables the cap.
	// FailFast stops a document's field checks at the first finding.
	// Structural gating and other files are unaffected.
	FailFast bool
}

// Caps applied by DefaultOptions. Strategy documents are hand-written and
// small; anything past these limits is not a plausible document.
const (
	DefaultMaxBytes int64 = 1 << 20
	DefaultMaxDepth int   = 32
)

// DefaultOptions returns the settings the CLI starts from: duplicate keys
// reported as warnings and the default input caps in force.
func DefaultOptions() Options {
	return Options{
		Strictness: Strictness{OnDuplicateKey: Warn},
		MaxDepth:   DefaultMaxDepth,
		MaxBytes:   DefaultMaxBytes,
	}
}
