package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Theme)
	assert.Equal(t, "♠", cfg.Avatar)
	assert.Equal(t, 100, cfg.DefaultBet)
	assert.False(t, cfg.NoSound)
	assert.NotEmpty(t, cfg.DataFile)
}

func TestLoadConfigFullFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
theme       = "light"
avatar      = "♥"
no_sound    = true
default_bet = 250
data_file   = "/tmp/bj.json"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "♥", cfg.Avatar)
	assert.True(t, cfg.NoSound)
	assert.Equal(t, 250, cfg.DefaultBet)
	assert.Equal(t, "/tmp/bj.json", cfg.DataFile)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `theme = "dark"`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "♠", cfg.Avatar)
	assert.Equal(t, 100, cfg.DefaultBet)
}

func TestLoadConfigRejectsUnknownTheme(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `theme = "solarized"`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid theme")
}

func TestLoadConfigRejectsMalformedHCL(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `theme = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
avatar      = "X"
default_bet = -5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "♠", cfg.Avatar, "unknown avatar falls back to the first")
	assert.Equal(t, 100, cfg.DefaultBet, "non-positive bet falls back to the default")
}
