package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "data/catalog.json", cfg.Catalog)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"port": 9999, "top_n": 3}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 3, cfg.TopN)
	// Unset fields keep defaults.
	assert.Equal(t, 30, cfg.ScanTimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{bad`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate_CatalogMustExist(t *testing.T) {
	cfg := Defaults()
	cfg.Catalog = filepath.Join(t.TempDir(), "missing.json")

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_Ranges(t *testing.T) {
	catalogPath := writeFile(t, "catalog.json", `[]`)

	cfg := Defaults()
	cfg.Catalog = catalogPath
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Port = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.TopN = -1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.ScanTimeoutSeconds = 0
	assert.Error(t, bad.Validate())
}

func TestNewTokenConfig(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN_EXPIRATION_HOURS", "48")

	cfg, err := NewTokenConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewTokenConfig_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "")

	_, err := NewTokenConfig()
	assert.Error(t, err)
}

func TestNewTokenConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN_EXPIRATION_HOURS", "zero")

	_, err := NewTokenConfig()
	assert.Error(t, err)
}
