package config_test

import (
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geninv/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg := config.Load()

	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.NotEmpty(t, cfg.DBFile)
	assert.NotEmpty(t, cfg.OutputDir)
}

func TestRequireAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	assert.Error(t, config.Load().RequireAPIKey())

	t.Setenv("OPENAI_API_KEY", "sk-test")
	assert.NoError(t, config.Load().RequireAPIKey())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-roundtrip")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("GENINV_DB_FILE", "/tmp/geninv-test.db")
	t.Setenv("GENINV_OUTPUT_DIR", "/tmp/geninv-out")

	cfg := config.Load()
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, cfg.Save(path))

	saved, err := godotenv.Read(path)
	require.NoError(t, err)

	// Listed values equal the last saved values.
	assert.Equal(t, cfg.Settings(), saved)
	assert.Equal(t, "sk-roundtrip", saved["OPENAI_API_KEY"])
	assert.Equal(t, "gpt-4o", saved["OPENAI_MODEL"])
}

func TestSaveCreatesDirectory(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.env")
	require.NoError(t, config.Load().Save(path))

	_, err := godotenv.Read(path)
	assert.NoError(t, err)
}
