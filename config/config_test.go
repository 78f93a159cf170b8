package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://silverlake.maxoptra.com", cfg.Provider.BaseURL)
	require.NotEmpty(t, cfg.Provider.APIKey)
	require.Equal(t, ProviderModeMaxoptra, cfg.Provider.Mode)
	require.Equal(t, ":5000", cfg.Web.HTTPAddr)
	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
provider:
  base_url: "https://acme.maxoptra.com///"
  api_key: "k1"
  mode: "fake"
web:
  http_addr: ":8080"
  swagger_path: "api/track-web.swagger.json"
kafka:
  host: "localhost"
  port: 9092
  lookup_completed_topic_name: "tracklink.lookup.completed"
log:
  level: "debug"
  format: "json"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "https://acme.maxoptra.com", cfg.Provider.BaseURL)
	require.Equal(t, "k1", cfg.Provider.APIKey)
	require.Equal(t, ProviderModeFake, cfg.Provider.Mode)
	require.Equal(t, ":8080", cfg.Web.HTTPAddr)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, "tracklink.lookup.completed", cfg.Kafka.LookupCompletedTopicName)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "provider:\n  api_key: \"k2\"\n"))
	require.NoError(t, err)
	require.Equal(t, "k2", cfg.Provider.APIKey)
	require.Equal(t, "https://silverlake.maxoptra.com", cfg.Provider.BaseURL)
	require.Equal(t, ":5000", cfg.Web.HTTPAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAXOPTRA_BASE_URL", "https://env.maxoptra.com/")
	t.Setenv("MAXOPTRA_API_KEY", "")
	t.Setenv("TRACKLINK_HTTP_ADDR", ":9000")

	cfg, err := Load(writeConfig(t, "provider:\n  api_key: \"from-file\"\n"))
	require.NoError(t, err)
	require.Equal(t, "https://env.maxoptra.com", cfg.Provider.BaseURL)
	require.Empty(t, cfg.Provider.APIKey)
	require.Equal(t, ":9000", cfg.Web.HTTPAddr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config file")

	_, err = Load(writeConfig(t, "provider: [1, 2"))
	require.ErrorContains(t, err, "unmarshal yaml")

	_, err = Load(writeConfig(t, "provider:\n  mode: \"ups\"\n"))
	require.ErrorContains(t, err, "validate config")

	_, err = Load(writeConfig(t, "log:\n  level: \"trace\"\n"))
	require.ErrorContains(t, err, "validate config")

	_, err = Load(writeConfig(t, "kafka:\n  host: \"localhost\"\n"))
	require.ErrorContains(t, err, "validate config")
}
