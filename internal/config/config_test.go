package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Bases)
	assert.Equal(t, DefaultBatch, cfg.Batch)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
bases:
  api: https://api.example.com/v1/
  assets: /static/
batch:
  workers: 16
  delimiter: ","
output:
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1/", cfg.Bases["api"])
	assert.Equal(t, "/static/", cfg.Bases["assets"])
	assert.Equal(t, 16, cfg.Batch.Workers)
	assert.Equal(t, ",", cfg.Batch.Delimiter)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, DefaultOutput.Width, cfg.Output.Width)
}

func TestLoad_MixedCaseBaseName(t *testing.T) {
	path := writeConfig(t, "bases:\n  API: /api/v2/\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	for _, name := range []string{"API", "api", "Api"} {
		base, err := cfg.Base(name)
		require.NoError(t, err, name)
		assert.Equal(t, "/api/v2/", base)
	}
}

func TestLoad_InvalidWorkersFallsBack(t *testing.T) {
	path := writeConfig(t, "batch:\n  workers: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBatch.Workers, cfg.Batch.Workers)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PATHJOIN_BATCH_WORKERS", "9")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Batch.Workers)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "bases: [unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Base(t *testing.T) {
	cfg := &Config{Bases: map[string]string{"api": "/api/", "web": "/web"}}

	base, err := cfg.Base("api")
	require.NoError(t, err)
	assert.Equal(t, "/api/", base)

	_, err = cfg.Base("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api, web")

	_, err = (&Config{}).Base("api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bases configured")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), expandPath("~/x"))
	assert.Equal(t, "/abs", expandPath("/abs"))
}
