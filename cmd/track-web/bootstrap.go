package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BearBump/TrackLink/config"
	"github.com/BearBump/TrackLink/internal/bootstrap"
	"github.com/BearBump/TrackLink/internal/broker/kafka"
	"github.com/BearBump/TrackLink/internal/integrations/carrier"
	"github.com/BearBump/TrackLink/internal/services/trackings"
)

type eventProducer interface {
	trackings.Producer
	Close() error
}

type webFactories struct {
	newGateway  func(cfg *config.Config, log *slog.Logger) carrier.Gateway
	newProducer func(cfg *config.Config) eventProducer
}

func defaultWebFactories() webFactories {
	return webFactories{
		newGateway: func(cfg *config.Config, log *slog.Logger) carrier.Gateway {
			return bootstrap.NewGateway(cfg.Provider, log)
		},
		newProducer: func(cfg *config.Config) eventProducer {
			brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
			return kafka.NewProducer(brokers)
		},
	}
}

type trackWebApp struct {
	ctx      context.Context
	cancel   context.CancelFunc
	opts     trackWebOpts
	svc      *trackings.Service
	log      *slog.Logger
	producer eventProducer

	stopSignals func()
}

func newTrackWebApp(ctx context.Context, cfg *config.Config, log *slog.Logger, f webFactories) *trackWebApp {
	gw := f.newGateway(cfg, log)

	var (
		producer eventProducer
		svc      *trackings.Service
	)
	if cfg.Kafka.Enabled() {
		producer = f.newProducer(cfg)
		svc = trackings.New(gw, producer, cfg.Kafka.LookupCompletedTopicName)
		log.Info("lookup events enabled", "topic", cfg.Kafka.LookupCompletedTopicName)
	} else {
		svc = trackings.New(gw, nil, "")
	}

	ctx, cancel := context.WithCancel(ctx)
	return &trackWebApp{
		ctx:    ctx,
		cancel: cancel,
		opts: trackWebOpts{
			httpAddr:    cfg.Web.HTTPAddr,
			swaggerPath: cfg.Web.SwaggerPath,
		},
		svc:      svc,
		log:      log,
		producer: producer,
	}
}

func mustBootstrapTrackWeb() *trackWebApp {
	cfg, err := config.Load(os.Getenv("configPath"))
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	log := bootstrap.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(log)
	if cfg.Provider.Mode == config.ProviderModeMaxoptra && cfg.Provider.APIKey == "" {
		log.Warn("maxoptra api key is empty, reference lookups are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := newTrackWebApp(ctx, cfg, log, defaultWebFactories())
	app.stopSignals = stop
	return app
}

func (a *trackWebApp) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.stopSignals != nil {
		a.stopSignals()
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.log.Warn("close producer", "error", err.Error())
		}
	}
}

func (a *trackWebApp) Run() error {
	return runTrackWeb(a.ctx, a.opts, a.svc, a.log)
}
