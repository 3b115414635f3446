package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/starmilestone/internal/application"
)

type renderFlags struct {
	owner     string
	repo      string
	milestone string
	logo      string
	output    string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single badge to a file or stdout",
		Example: `  starmilestone render --owner golang --repo go --milestone 100000 --output go.svg
  starmilestone render --owner octo --repo hello --milestone 100 --logo https://example.com/logo.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.owner, "owner", "", "repository owner (required)")
	cmd.Flags().StringVar(&f.repo, "repo", "", "repository name (required)")
	cmd.Flags().StringVar(&f.milestone, "milestone", "", "star milestone, a positive integer (required)")
	cmd.Flags().StringVar(&f.logo, "logo", "", "logo image URL (default: owner avatar)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func render(cmd *cobra.Command, f renderFlags) error {
	// Validate before touching the network, same rules as the HTTP endpoint.
	req, err := application.ParseMilestoneRequest(f.owner, f.repo, f.milestone, f.logo)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newMilestoneService(cfg, slog.Default())
	if err != nil {
		return err
	}

	badge, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("generate badge for %s: %w", req.FullName(), err)
	}

	if f.output == "" {
		_, err = cmd.OutOrStdout().Write(badge.SVG)
		return err
	}

	if err := os.WriteFile(f.output, badge.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.output, err)
	}
	slog.Info("badge written",
		"repo", req.FullName(),
		"milestone", req.Milestone,
		"achieved", badge.Result.Achieved,
		"path", f.output,
	)
	return nil
}
