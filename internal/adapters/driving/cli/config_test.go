package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store
	t.Cleanup(func() { configStore = nil })
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	setupTestConfig(t)

	out, err := executeCommand(t, "config", "set", "api.url", "http://localhost:9000")
	require.NoError(t, err)
	assert.Contains(t, out, "api.url = http://localhost:9000")

	out, err = executeCommand(t, "config", "get", "api.url")
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:9000")
}

func TestConfigCmd_SetParsesTypes(t *testing.T) {
	setupTestConfig(t)

	_, err := executeCommand(t, "config", "set", "api.timeout_seconds", "60")
	require.NoError(t, err)
	assert.Equal(t, 60, configStore.GetInt("api.timeout_seconds"))

	_, err = executeCommand(t, "config", "set", "watch.enabled", "true")
	require.NoError(t, err)
	assert.True(t, configStore.GetBool("watch.enabled"))
}

func TestConfigCmd_GetUnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, err := executeCommand(t, "config", "get", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigCmd_Path(t *testing.T) {
	setupTestConfig(t)

	out, err := executeCommand(t, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	configStore = nil

	_, err := executeCommand(t, "config", "get", "api.url")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
