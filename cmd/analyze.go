package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/report"
)

var analysisName string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score, price and report on a mission",
	Long: `Analyze runs the full planning pipeline for one mission: viability
scores, vendor cost comparison and the narrative mission report.

The report comes from the configured LLM provider when an API key is set
(see ai.api_key_env) and falls back to a deterministic local report on any
failure or when no key is configured.

  leoplan analyze -m mission.yml
  leoplan analyze -m mission.yml -f html -o report.html`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&missionFile, "mission", "m", "", "mission file (YAML or JSON)")
	analyzeCmd.Flags().StringVar(&analysisName, "name", "", "display name for the analysis")
	_ = analyzeCmd.MarkFlagRequired("mission")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. Load configuration and build the pipeline.
	e, err := loadEnv()
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// 2. Read the mission.
	slog.Info("loading mission", "path", missionFile)
	mission, err := planner.LoadMission(missionFile)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// 3. Run score, cost and report.
	mission.Name = analysisName
	a, err := e.pipeline.RunMission(ctx, *mission)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// 4. Select formatter and write output.
	f, err := report.NewFormatter(outputFormat(e.cfg))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if _, ok := f.(*report.XLSXFormatter); ok && output == "" {
		return fmt.Errorf("analyze: xlsx output requires --output")
	}

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	defer closeFn()

	if err := f.Format(w, a); err != nil {
		return fmt.Errorf("analyze: writing report: %w", err)
	}

	slog.Debug(report.Summary(a))
	return nil
}
