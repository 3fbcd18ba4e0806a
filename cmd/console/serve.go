package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jmanzanog/portfolio-console/internal/application"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/config"
	httpHandler "github.com/jmanzanog/portfolio-console/internal/interfaces/http"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP console server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

// buildServer creates and configures the HTTP server with all routes and handlers
func buildServer(cfg *config.Config, pages *application.Pages, feed httpHandler.NotificationFeed) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())
	handler := httpHandler.NewHandler(pages, feed)
	httpHandler.SetupRoutes(router, handler)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:           httpHandler.NewCORS(cfg.CORSAllowedOrigins).Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// App wraps the running components for shutdown.
type App struct {
	Server        *http.Server
	Refresher     *application.StoreRefresher
	Alerts        *application.AlertWatcher
	CancelContext context.CancelFunc
}

// stopBackground halts the refresher and the alert schedule.
func (a *App) stopBackground() {
	if a.Refresher != nil {
		a.Refresher.Stop()
	}
	a.Alerts.Stop()
	a.CancelContext()
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopBackground()

	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	return nil
}

// startBackground starts the periodic store reload and the alert schedule
// when they are configured.
func startBackground(ctx context.Context, cfg *config.Config, pages *application.Pages) (*application.StoreRefresher, error) {
	var refresher *application.StoreRefresher
	if cfg.PortfolioRefreshInterval > 0 {
		refresher = application.NewStoreRefresher(pages.App.Store, cfg.PortfolioRefreshInterval)
		go refresher.Start(ctx)
	}

	if cfg.AlertSchedule != "" {
		if err := pages.Alerts.Start(ctx, cfg.AlertSchedule); err != nil {
			if refresher != nil {
				refresher.Stop()
			}
			return nil, err
		}
	}
	return refresher, nil
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	pages, feed := newPages(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pages.App.Store.Reload(ctx)

	refresher, err := startBackground(ctx, cfg, pages)
	if err != nil {
		return fmt.Errorf("failed to start background jobs: %w", err)
	}

	app := &App{
		Server:        buildServer(cfg, pages, feed),
		Refresher:     refresher,
		Alerts:        pages.Alerts,
		CancelContext: cancel,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "host", cfg.ServerHost, "port", cfg.ServerPort, "api", cfg.APIBaseURL)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		app.stopBackground()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	slog.Info("Server exited gracefully")
	return nil
}
