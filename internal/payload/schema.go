package payload

import "github.com/abhisek/itemizer/internal/taxonomy"

func stringEnum[T ~string](vals []T) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func itemTypeEnum() []any {
	all := taxonomy.AllItemTypes()
	out := make([]any, len(all))
	for i, info := range all {
		out[i] = string(info.Type)
	}
	return out
}

var confidenceEnum = stringEnum([]taxonomy.Confidence{
	taxonomy.ConfidenceHigh, taxonomy.ConfidenceMedium, taxonomy.ConfidenceLow,
})

var labelledText = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"label": map[string]any{"type": "string", "minLength": 1},
		"text":  map[string]any{"type": "string"},
	},
	"required": []any{"label", "text"},
}

var wordLimit = map[string]any{
	"type": []any{"integer", "string"},
}

// ContentSchema describes extracted content as stored and served.
var ContentSchema = &Schema{
	Name: "extracted-content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"instructions": map[string]any{"type": "string"},
			"word_limit":   wordLimit,
			"passage":      map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"number": map[string]any{"type": "integer", "minimum": 1},
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"multiple-choice", "statement", "completion", "matching-item", "short-answer"},
						},
						"text":       map[string]any{"type": "string"},
						"options":    map[string]any{"type": "array", "items": labelledText},
						"word_limit": wordLimit,
					},
					"required": []any{"number", "kind", "text"},
				},
			},
			"blanks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"number":   map[string]any{"type": "integer", "minimum": 1},
						"context":  map[string]any{"type": "string"},
						"position": map[string]any{"type": "integer", "minimum": 0},
						"kind":     map[string]any{"const": "fill-in"},
					},
					"required": []any{"number", "context", "position", "kind"},
				},
			},
			"table": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"headers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"rows": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"value":    map[string]any{"type": "string"},
									"is_blank": map[string]any{"type": "boolean"},
								},
								"required": []any{"value", "is_blank"},
							},
						},
					},
					"blanks": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"row":    map[string]any{"type": "integer", "minimum": 0},
								"column": map[string]any{"type": "integer", "minimum": 0},
								"header": map[string]any{"type": "string"},
							},
							"required": []any{"row", "column", "header"},
						},
					},
				},
				"required": []any{"headers", "rows", "blanks"},
			},
			"options":      map[string]any{"type": "array", "items": labelledText},
			"min_words":    map[string]any{"type": "integer", "minimum": 0},
			"time_minutes": map[string]any{"type": "integer", "minimum": 0},
			"cue_points":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"questions", "blanks", "options"},
	},
}

// ResultSchema describes a classification result.
var ResultSchema = &Schema{
	Name: "classification",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill":            map[string]any{"enum": stringEnum(taxonomy.AllSkills())},
			"module":           map[string]any{"enum": stringEnum([]taxonomy.Module{taxonomy.ModuleAcademic, taxonomy.ModuleGeneralTraining})},
			"item_type":        map[string]any{"enum": itemTypeEnum()},
			"category":         map[string]any{"type": "string", "minLength": 1},
			"confidence":       map[string]any{"enum": confidenceEnum},
			"skill_confidence": map[string]any{"enum": confidenceEnum},
			"reason":           map[string]any{"type": "string"},
			"rule":             map[string]any{"type": "string"},
		},
		"required": []any{"skill", "module", "item_type", "category", "confidence", "reason"},
	},
}

// ClassifyRequestSchema describes the body of a classify request.
var ClassifyRequestSchema = &Schema{
	Name: "classify-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{"type": "string"},
			"html":    map[string]any{"type": "boolean"},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}

// BatchRequestSchema describes the body of a batch classify request.
var BatchRequestSchema = &Schema{
	Name: "batch-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"content": map[string]any{"type": "string"},
						"html":    map[string]any{"type": "boolean"},
					},
					"required": []any{"content"},
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

// SaveRequestSchema describes the body of a save request.
var SaveRequestSchema = &Schema{
	Name: "save-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{"type": "string"},
			"html":    map[string]any{"type": "boolean"},
			"approve": map[string]any{"type": "boolean"},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}
