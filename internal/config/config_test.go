package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "127.0.0.1", GetString("server.addr"))
	assert.Equal(t, 3030, GetInt("server.port"))
	assert.Equal(t, 250, GetInt("battle.turnLimit"))
	assert.Equal(t, "sqlite", GetString("db.driver"))
	assert.True(t, GetBool("server.cors"))
	assert.False(t, GetBool("influx.enabled"))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfg := `{"logLevel": "debug", "server": {"port": 8080}, "battle": {"turnLimit": 50}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battleapi.cfg.json"), []byte(cfg), 0o644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, 50, GetInt("battle.turnLimit"))
	// Untouched keys keep their defaults.
	assert.Equal(t, "127.0.0.1", GetString("server.addr"))
}
