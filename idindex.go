package strategies

import (
	"strings"

	"github.com/shandley/openpretext-strategies/i18n"
)

// IDIndex maps each extracted identifier to the filenames that declared it,
// preserving discovery order for both ids and filenames. The runner owns one
// per pass and hands it to the cross-document check explicitly.
type IDIndex struct {
	order []string
	byID  map[string][]string
}

// NewIDIndex returns an empty index.
func NewIDIndex() *IDIndex {
	return &IDIndex{byID: make(map[string][]string)}
}

// Add records that filename declared id. Empty ids are ignored; a document
// without a recoverable identifier never participates in duplicate detection.
func (x *IDIndex) Add(id, filename string) {
	if id == "" {
		return
	}
	if _, seen := x.byID[id]; !seen {
		x.order = append(x.order, id)
	}
	x.byID[id] = append(x.byID[id], filename)
}

// Distinct reports the number of distinct identifiers recorded.
func (x *IDIndex) Distinct() int { return len(x.order) }

// Duplicates emits one error per identifier declared by more than one file,
// naming every offending filename comma-joined in discovery order. Output
// order follows first appearance of each id.
func (x *IDIndex) Duplicates() Issues {
	var iss Issues
	for _, id := range x.order {
		files := x.byID[id]
		if len(files) < 2 {
			continue
		}
		joined := strings.Join(files, ", ")
		iss = AppendIssues(iss, Issue{
			Path:     "/" + fieldID,
			Code:     CodeUniqueness,
			Severity: Error,
			Message:  i18n.T(CodeUniqueness, nil),
			Hint:     "id \"" + id + "\" declared in: " + joined,
			Params:   map[string]any{"id": id, "files": joined},
		})
	}
	return iss
}
