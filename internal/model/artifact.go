package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/passcheck/internal/features"
)

// ArtifactError indicates a model artifact that could not be read, does
// not conform to its schema, or was fitted on a different column order.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

type scalerArtifact struct {
	Kind         string          `json:"kind"`
	FeatureNames []string        `json:"feature_names"`
	Mean         features.Vector `json:"mean"`
	Scale        features.Vector `json:"scale"`
}

type classifierArtifact struct {
	Kind         string          `json:"kind"`
	FeatureNames []string        `json:"feature_names"`
	Coef         features.Vector `json:"coef"`
	Intercept    float64         `json:"intercept"`
	Classes      []int           `json:"classes"`
}

// LoadScaler reads a standard scaler artifact from path.
func LoadScaler(path string) (*StandardScaler, error) {
	var a scalerArtifact
	if err := readArtifact(path, ScalerSchema, &a); err != nil {
		return nil, err
	}
	if err := checkColumns(a.FeatureNames); err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	s, err := NewStandardScaler(a.Mean, a.Scale)
	if err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	return s, nil
}

// LoadClassifier reads a logistic regression artifact from path.
func LoadClassifier(path string) (*LogisticRegression, error) {
	var a classifierArtifact
	if err := readArtifact(path, ClassifierSchema, &a); err != nil {
		return nil, err
	}
	if err := checkColumns(a.FeatureNames); err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	if a.Classes[0] != 0 || a.Classes[1] != 1 {
		return nil, &ArtifactError{Path: path, Err: fmt.Errorf("classes must be [0 1], got %v", a.Classes)}
	}
	return NewLogisticRegression(a.Coef, a.Intercept), nil
}

// checkColumns rejects artifacts fitted on a different column order.
func checkColumns(names []string) error {
	for i, name := range names {
		if name != features.Columns[i] {
			return fmt.Errorf("feature %d is %q, want %q", i, name, features.Columns[i])
		}
	}
	return nil
}

func readArtifact(path string, schema *Schema, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactError{Path: path, Err: err}
	}
	if err := validateArtifact(schema, raw); err != nil {
		return &ArtifactError{Path: path, Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ArtifactError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func validateArtifact(schema *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON, not Go-typed maps.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
