package strategies

import (
	js "github.com/shandley/openpretext-strategies/jsonschema"
)

// DocumentJSONSchema describes the strategy document contract for external
// tooling (editor integration, CI annotation). The validator itself works
// dynamically and does not consume this; the two are kept in sync through the
// shared field registry.
func DocumentJSONSchema() *js.Schema {
	one := 1
	return &js.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "Strategy document",
		Description: "A curation strategy record validated before catalog import.",
		Type:        "object",
		Properties: map[string]*js.Schema{
			fieldID: {
				Type:        "string",
				MinLength:   &one,
				Pattern:     stemPattern.String(),
				Description: "Unique identifier across the catalog; equals the filename stem.",
			},
			fieldName: {
				Type:        "string",
				MinLength:   &one,
				Description: "Human-readable display label.",
			},
			fieldSupplement: {
				Type:        "string",
				Description: "Free-form guidance, opaque to validation. May be empty.",
			},
			fieldDescription: {
				Type:        "string",
				Default:     "",
				Description: "Optional summary; the consumer defaults it to an empty string.",
			},
			fieldCategory: {
				Type:        "string",
				Enum:        Categories(),
				Default:     "general",
				Description: "Strategy grouping.",
			},
			fieldExamples: {
				Type:        "array",
				Default:     []any{},
				Description: "Worked examples; the consumer defaults to an empty list.",
				Items: &js.Schema{
					Type: "object",
					Properties: map[string]*js.Schema{
						fieldScenario: {Type: "string", Description: "Situation the example addresses."},
						fieldCommands: {Type: "string", Description: "What to run or do."},
					},
					Required: []string{fieldScenario, fieldCommands},
				},
			},
		},
		Required: []string{fieldID, fieldName, fieldSupplement},
	}
}
