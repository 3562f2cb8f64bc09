package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/passcheck/internal/model"
)

// Config holds all passcheck configuration.
type Config struct {
	// ModelPath is the logistic regression artifact.
	ModelPath string `yaml:"model"`

	// ScalerPath is the standard scaler artifact.
	ScalerPath string `yaml:"scaler"`

	// Addr is the listen address for `passcheck serve`.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with artifacts in the working directory.
func DefaultConfig() Config {
	return Config{
		ModelPath:  "best_model_logreg.json",
		ScalerPath: "scaler.json",
		Addr:       ":8501",
	}
}

// Load builds a Config from defaults, an optional .env file, an optional
// YAML file at path, and environment variables, in increasing priority.
// An empty path skips the YAML file; a missing .env is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if p := os.Getenv("PASSCHECK_MODEL"); p != "" {
		cfg.ModelPath = p
	}
	if p := os.Getenv("PASSCHECK_SCALER"); p != "" {
		cfg.ScalerPath = p
	}
	if a := os.Getenv("PASSCHECK_ADDR"); a != "" {
		cfg.Addr = a
	}
}

// Paths returns the artifact locations.
func (c Config) Paths() model.Paths {
	return model.Paths{Model: c.ModelPath, Scaler: c.ScalerPath}
}

// Validate checks that both artifact paths are set.
func (c Config) Validate() error {
	var errs []error
	if c.ModelPath == "" {
		errs = append(errs, errors.New("model path is required (--model or PASSCHECK_MODEL)"))
	}
	if c.ScalerPath == "" {
		errs = append(errs, errors.New("scaler path is required (--scaler or PASSCHECK_SCALER)"))
	}
	return errors.Join(errs...)
}
