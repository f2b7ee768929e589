package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, int64(DefaultListLimit), cfg.ListLimit)
}

func TestLoad_File(t *testing.T) {
	configContent := `
db_path: /tmp/test-wallet.db
currency: "€"
list_limit: 25
`

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-wallet.db", cfg.DBPath)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, int64(25), cfg.ListLimit)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configContent := `
db_path: /tmp/from-file.db
list_limit: 25
`

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("WALLET_DB_PATH", "/tmp/from-env.db")
	t.Setenv("WALLET_LIST_LIMIT", "5")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.Equal(t, int64(5), cfg.ListLimit)
}

func TestLoad_InvalidFile(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidListLimit(t *testing.T) {
	t.Setenv("WALLET_LIST_LIMIT", "many")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
