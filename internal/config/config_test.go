package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "clients.csv", c.ClientsCSV)
	assert.Equal(t, "assets/client/emails.csv", c.SentEmailsCSV)
	assert.Equal(t, "users.csv", c.UsersCSV)
	assert.Equal(t, "email_config.json", c.EmailConfigPath)
	assert.Equal(t, "assets/files", c.FilesDir)
	assert.Equal(t, "receipts", c.ReceiptsDir)
	assert.Equal(t, "templates", c.TemplatesDir)
	assert.Equal(t, "logs/dpo.log", c.LogPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "clients.csv", cfg.ClientsCSV)
	assert.Equal(t, "assets/files", cfg.FilesDir)
}
