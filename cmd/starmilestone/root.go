package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/starmilestone/internal/adapter/driven/github"
	"github.com/ericfisherdev/starmilestone/internal/adapter/driven/logo"
	"github.com/ericfisherdev/starmilestone/internal/adapter/driven/svg"
	"github.com/ericfisherdev/starmilestone/internal/application"
	"github.com/ericfisherdev/starmilestone/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "starmilestone",
		Short: "Generate badges showing when a GitHub repository reached a star milestone.",
		Long: `starmilestone serves SVG badges that show the date a GitHub repository
received its Nth star, or its current star count if the milestone is still ahead.
Run "serve" for the HTTP service or "render" to produce a single badge.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newRenderCmd())
	return root
}

// loadConfig loads configuration and installs the default slog logger at the
// configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, nil
}

// newMilestoneService wires the driven adapters into the badge pipeline. The
// GitHub client and logo client are separate so the token never leaves GitHub.
func newMilestoneService(cfg *config.Config, logger *slog.Logger) (*application.MilestoneService, error) {
	ghClient := githubadapter.NewClient(githubadapter.Options{
		Token:           cfg.GitHubToken,
		Timeout:         cfg.UpstreamTimeout,
		CacheResponses:  cfg.HTTPCache,
		WaitOnRateLimit: cfg.RateLimitWait,
	}, logger)
	if cfg.HasGitHubToken() {
		logger.Info("github client created", "auth", "token")
	} else {
		logger.Info("no github token configured, using anonymous rate limit")
	}

	logoFetcher := logo.NewFetcher(&http.Client{Timeout: cfg.UpstreamTimeout}, cfg.LogoMaxBytes)

	renderer, err := svg.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	return application.NewMilestoneService(ghClient, logoFetcher, renderer, logger), nil
}
