package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "degenlauncher/docs"
	"degenlauncher/internal/config"
	"degenlauncher/internal/handler"
	"degenlauncher/internal/logging"
	"degenlauncher/internal/pinning/inline"
	"degenlauncher/internal/pinning/providers"
	"degenlauncher/internal/router"
	"degenlauncher/internal/service"
)

// @title Degen Launcher Image API
// @version 1.0
// @description Resolves token artwork to IPFS or inline data URLs for the token factory.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	// Initialize upload strategies
	remote, names, err := providers.Remote(&cfg.Pinning)
	if err != nil {
		return fmt.Errorf("failed to initialize pinning providers: %w", err)
	}

	// Initialize services
	imageSvc := service.NewImageService(remote, names, inline.NewEncoder())

	// Initialize handlers
	imageH := handler.NewImageHandler(imageSvc)
	healthH := handler.NewHealthHandler(imageSvc)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, imageH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", cfg.Server.Port, "strategies", imageSvc.Strategies())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
