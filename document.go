package strategies

import (
	"regexp"
	"strings"
)

// Ext is the recognized strategy document extension.
const Ext = ".json"

// Recognized document fields, in check order.
const (
	fieldID          = "id"
	fieldName        = "name"
	fieldSupplement  = "supplement"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldExamples    = "examples"

	fieldScenario = "scenario"
	fieldCommands = "commands"
)

var knownFields = []string{
	fieldID,
	fieldName,
	fieldSupplement,
	fieldDescription,
	fieldCategory,
	fieldExamples,
}

// categories is the closed set of accepted category values. Anything outside
// it is an error; the consumer defaults an absent category to "general".
var categories = []string{"general", "pattern", "workflow", "organism"}

// Categories returns the accepted category values in their canonical order.
func Categories() []string {
	return append([]string(nil), categories...)
}

func validCategory(v string) bool {
	for _, c := range categories {
		if v == c {
			return true
		}
	}
	return false
}

// stemPattern is the filename convention: hyphenated lowercase alphanumerics,
// e.g. "haplotig-removal". Applied to the stem, before Ext.
var stemPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// stem strips the recognized extension from a document filename.
func stem(filename string) string { return strings.TrimSuffix(filename, Ext) }

// validFilename reports whether a document filename follows the naming
// convention, independent of the file's content.
func validFilename(filename string) bool {
	if !strings.HasSuffix(filename, Ext) {
		return false
	}
	return stemPattern.MatchString(stem(filename))
}
