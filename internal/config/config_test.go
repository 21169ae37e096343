package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesoslab/beatbridge/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("all variables set", func(t *testing.T) {
		t.Setenv("MESOS_EXECUTORINFO_JSON", `{"framework_id":{"value":"fw-1"}}`)
		t.Setenv("MESOS_LOG_SANDBOX_DIRECTORY", "/var/lib/mesos/sandbox")
		t.Setenv("MESOS_LOG_STREAM", "STDOUT")
		t.Setenv("FILEBEAT_BIN", "/opt/filebeat/filebeat")

		settings, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, `{"framework_id":{"value":"fw-1"}}`, settings.ExecutorInfo)
		assert.Equal(t, "/var/lib/mesos/sandbox", settings.SandboxDir)
		assert.Equal(t, "STDOUT", settings.Stream)
		assert.Equal(t, "/opt/filebeat/filebeat", settings.FilebeatBin)
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Setenv("MESOS_EXECUTORINFO_JSON", "")
		t.Setenv("MESOS_LOG_SANDBOX_DIRECTORY", "")
		t.Setenv("MESOS_LOG_STREAM", "")
		t.Setenv("FILEBEAT_BIN", "")

		settings, err := config.Load()
		require.NoError(t, err)
		assert.Empty(t, settings.ExecutorInfo)
		assert.Empty(t, settings.SandboxDir)
		assert.Empty(t, settings.Stream)
	})

	t.Run("filebeat binary defaults", func(t *testing.T) {
		t.Setenv("FILEBEAT_BIN", "")

		settings, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultFilebeatBin, settings.FilebeatBin)
	})
}
