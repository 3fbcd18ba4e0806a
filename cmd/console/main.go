package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmanzanog/portfolio-console/internal/application"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/backend"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/config"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/persistence/memory"
)

// setupLogger configures and returns a structured logger with source information.
// Logs go to stderr so command output on stdout stays clean.
func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(logger)
	return logger
}

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	apiURL     string
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.apiURL != "" {
		cfg.APIBaseURL = strings.TrimRight(o.apiURL, "/")
	}
	setupLogger(cfg.LogLevel)
	return cfg, nil
}

// newPages wires the API client, the notification feed and every page view.
func newPages(cfg *config.Config) (*application.Pages, *memory.NotificationFeed) {
	client := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	slog.Debug("Portfolio API client configured", "base_url", client.BaseURL(), "timeout", cfg.APITimeout)
	feed := memory.NewNotificationFeed(cfg.NotificationLimit)
	return application.NewPages(client, feed), feed
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "portfolio-console",
		Short: "Browse and manage portfolios served by the portfolio API",
		Long: `portfolio-console is a client for the portfolio tracker API.

Without a subcommand it runs the HTTP console server. The other commands
run a single page load or action and print the result.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file (default $"+config.PathEnv+")")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "portfolio API base URL, overrides the configuration")

	root.AddCommand(
		newServeCmd(opts),
		newPortfoliosCmd(opts),
		newDashboardCmd(opts),
		newAlertsCmd(opts),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
