package model

import "github.com/abhisek/passcheck/internal/features"

// Schema is a named JSON Schema for one artifact kind.
type Schema struct {
	Name       string
	Definition map[string]any
}

func vectorSchema(items map[string]any) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    items,
		"minItems": features.Size,
		"maxItems": features.Size,
	}
}

// ScalerSchema describes a standard scaler artifact.
var ScalerSchema = &Schema{
	Name: "standard-scaler",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind":          map[string]any{"const": "standard_scaler"},
			"feature_names": vectorSchema(map[string]any{"type": "string"}),
			"mean":          vectorSchema(map[string]any{"type": "number"}),
			"scale": vectorSchema(map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			}),
		},
		"required": []any{"kind", "feature_names", "mean", "scale"},
	},
}

// ClassifierSchema describes a logistic regression artifact.
var ClassifierSchema = &Schema{
	Name: "logistic-regression",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind":          map[string]any{"const": "logistic_regression"},
			"feature_names": vectorSchema(map[string]any{"type": "string"}),
			"coef":          vectorSchema(map[string]any{"type": "number"}),
			"intercept":     map[string]any{"type": "number"},
			"classes": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "integer"},
				"minItems": 2,
				"maxItems": 2,
			},
		},
		"required": []any{"kind", "feature_names", "coef", "intercept", "classes"},
	},
}
