package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passcheck/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PASSCHECK_MODEL", "PASSCHECK_SCALER", "PASSCHECK_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "best_model_logreg.json", cfg.ModelPath)
	assert.Equal(t, "scaler.json", cfg.ScalerPath)
	assert.Equal(t, ":8501", cfg.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "passcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: artifacts/model.json\nscaler: artifacts/scaler.json\naddr: \":9000\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "artifacts/model.json", cfg.ModelPath)
	assert.Equal(t, "artifacts/scaler.json", cfg.ScalerPath)
	assert.Equal(t, ":9000", cfg.Addr)

	t.Setenv("PASSCHECK_MODEL", "/env/model.json")
	t.Setenv("PASSCHECK_ADDR", ":7000")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/model.json", cfg.ModelPath)
	assert.Equal(t, "artifacts/scaler.json", cfg.ScalerPath)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is present, even if empty.
	require.NoError(t, os.Unsetenv("PASSCHECK_SCALER"))
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PASSCHECK_SCALER=from-dotenv.json\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PASSCHECK_SCALER") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.ScalerPath)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("model: [unterminated"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model path is required")
	assert.Contains(t, err.Error(), "scaler path is required")
}

func TestPaths(t *testing.T) {
	cfg := Config{ModelPath: "m.json", ScalerPath: "s.json"}
	assert.Equal(t, model.Paths{Model: "m.json", Scaler: "s.json"}, cfg.Paths())
}
