package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai/providers"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/cli"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/costmodel"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/scorer"
)

// env bundles everything a command needs, built once from the config file.
type env struct {
	cfg      *cli.Config
	catalog  *catalog.Catalog
	pipeline *planner.Pipeline
}

func loadEnv() (*env, error) {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded",
		"thresholds.excellent", cfg.Thresholds.Excellent,
		"thresholds.good", cfg.Thresholds.Good,
		"scoring.policy", cfg.Scoring.Policy,
		"ai.provider", cfg.AI.Provider,
	)

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		slog.Info("catalog loaded", "path", cfg.Catalog.Path, "vendors", len(cat.Vendors))
	}

	policy, err := scorer.DefaultRegistry().Lookup(cfg.Scoring.Policy)
	if err != nil {
		return nil, err
	}

	pipeline := planner.NewPipeline(
		planner.WithScorer(scorer.NewEngine(
			scorer.WithCatalog(cat),
			scorer.WithPolicy(policy),
			scorer.WithThresholds(cfg.Thresholds.Excellent, cfg.Thresholds.Good),
		)),
		planner.WithCostModel(costmodel.New(costmodel.WithVendors(cat.Vendors))),
		planner.WithReportGenerator(reportGenerator(cfg)),
	)
	return &env{cfg: cfg, catalog: cat, pipeline: pipeline}, nil
}

// reportGenerator picks the local or the fallback-wrapped network generator.
// A provider that cannot be constructed degrades to the local report.
func reportGenerator(cfg *cli.Config) interfaces.ReportGenerator {
	key := cfg.APIKey()
	if !cfg.AI.Enabled || key == "" {
		slog.Debug("AI report disabled, using local report")
		return ai.NewLocalGenerator()
	}

	provider, err := providers.New(cfg.ProviderConfig(), cfg.AI.Timeout)
	if err != nil {
		slog.Warn("AI provider unavailable, using local report", "error", err)
		return ai.NewLocalGenerator()
	}

	var opts []ai.Option
	if cfg.AI.MaxTokens > 0 {
		opts = append(opts, ai.WithMaxTokens(cfg.AI.MaxTokens))
	}
	slog.Info("AI report enabled", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	return ai.NewGenerator(provider, key, cfg.AI.Timeout, opts...)
}

// outputFormat prefers the --format flag over the config file.
func outputFormat(cfg *cli.Config) string {
	if format != "" {
		return format
	}
	return cfg.Output.Format
}

// openOutput returns the --output file or the command's stdout.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	if output == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
