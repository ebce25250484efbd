package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "./dlslogs", GetString("logsDir"))
	assert.False(t, GetBool("logToFile"))
	assert.Empty(t, GetString("gameDir"))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{"logLevel": "debug", "logToFile": true, "gameDir": "/opt/game"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dlstool.cfg.json"), []byte(cfg), 0o644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.True(t, GetBool("logToFile"))
	assert.Equal(t, "/opt/game", GetString("gameDir"))
	assert.Equal(t, "./dlslogs", GetString("logsDir"), "unset keys keep their defaults")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dlstool.cfg.json"), []byte("{nope"), 0o644))

	assert.Error(t, Load(dir))
}
