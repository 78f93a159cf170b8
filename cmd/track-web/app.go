package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/BearBump/TrackLink/internal/api/trackings_web"
)

type trackWebOpts struct {
	httpAddr    string
	swaggerPath string

	onListen func(httpAddr string)
}

func runTrackWeb(ctx context.Context, opts trackWebOpts, svc trackings_web.Looker, log *slog.Logger) error {
	lis, err := net.Listen("tcp", opts.httpAddr)
	if err != nil {
		return err
	}
	if opts.onListen != nil {
		opts.onListen(lis.Addr().String())
	}

	web := trackings_web.New(svc, log)
	srv := &http.Server{
		Handler: trackings_web.NewRouter(web, trackings_web.RouterOpts{
			SwaggerPath: opts.swaggerPath,
			Ready:       func() error { return ctx.Err() },
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		// Lookups can hold a request for up to two provider timeouts.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("HTTP server listening", "addr", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
