package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httphandler "github.com/ericfisherdev/starmilestone/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/starmilestone/internal/adapter/driving/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the badge HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	// 1. Load configuration (fail fast on invalid values).
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"public_url", cfg.PublicURL,
		"upstream_timeout", cfg.UpstreamTimeout,
		"http_cache", cfg.HTTPCache,
		"ratelimit_wait", cfg.RateLimitWait,
	)

	// 2. Wire adapters and the badge pipeline.
	milestoneSvc, err := newMilestoneService(cfg, slog.Default())
	if err != nil {
		return err
	}

	// 3. Register API routes.
	apiHandler := httphandler.NewHandler(milestoneSvc, cfg.CacheControl, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 4. Register the web form.
	webHandler, err := webhandler.NewHandler(cfg.PublicURL, slog.Default())
	if err != nil {
		return err
	}
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	// WriteTimeout leaves room for three sequential upstream calls.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3*cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 5. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	// 6. Graceful shutdown with 10s timeout for in-flight badge requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
