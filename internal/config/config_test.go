package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "alumni-data", c.DataDir)
	assert.Equal(t, BackendFile, c.Backend)
	assert.Equal(t, "alumni.db", c.SQLitePath)
	assert.Equal(t, "", c.LogFile)
	assert.Equal(t, 10, c.LogMaxSizeMB)
	assert.Equal(t, 3, c.LogMaxBackups)
	assert.Equal(t, 10, c.PageSize)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "alumni-data", cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
}
