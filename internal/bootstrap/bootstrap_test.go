package bootstrap

import (
	"bytes"
	"testing"

	"github.com/BearBump/TrackLink/config"
	"github.com/BearBump/TrackLink/internal/integrations/carrier/fake"
	"github.com/BearBump/TrackLink/internal/integrations/carrier/maxoptra"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(config.LogConfig{Level: "warn", Format: "json"}, buf)
	log.Info("hidden")
	log.Warn("shown", "k", "v")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log = NewLogger(config.LogConfig{Level: "debug", Format: "text"}, buf)
	log.Debug("dbg")
	require.Contains(t, buf.String(), "level=DEBUG msg=dbg")
}

func TestNewGateway(t *testing.T) {
	require.IsType(t, &fake.FakeClient{}, NewGateway(config.ProviderConfig{Mode: config.ProviderModeFake}, nil))
	require.IsType(t, &maxoptra.Client{}, NewGateway(config.ProviderConfig{
		Mode: config.ProviderModeMaxoptra, BaseURL: "https://x.maxoptra.com", APIKey: "k",
	}, nil))
}
