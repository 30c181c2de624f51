// Command svgserve runs the HTTP render service, configured by
// SVGSCENE_* environment variables.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benoitkugler/svgscene/internal/config"
	"github.com/benoitkugler/svgscene/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	mode, _ := cfg.Mode()
	background, _ := cfg.BackgroundColor()
	handler := server.NewHandler(server.Options{
		ErrorMode:    mode,
		StrokeWidth:  cfg.StrokeWidth,
		Background:   background,
		MaxBodyBytes: cfg.MaxBodyBytes,
		MaxPixels:    cfg.MaxPixels,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	slog.Info("server starting", "addr", cfg.Addr, "error_mode", mode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
