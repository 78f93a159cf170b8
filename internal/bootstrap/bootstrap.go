// Package bootstrap turns config sections into the runtime pieces shared by
// the binaries.
package bootstrap

import (
	"io"
	"log/slog"

	"github.com/BearBump/TrackLink/config"
	"github.com/BearBump/TrackLink/internal/integrations/carrier"
	"github.com/BearBump/TrackLink/internal/integrations/carrier/fake"
	"github.com/BearBump/TrackLink/internal/integrations/carrier/maxoptra"
)

func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func NewGateway(cfg config.ProviderConfig, log *slog.Logger) carrier.Gateway {
	switch cfg.Mode {
	case config.ProviderModeFake:
		return fake.New()
	default:
		return maxoptra.New(cfg.BaseURL, cfg.APIKey, log)
	}
}
