package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/report"
)

var missionFile string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a mission's viability",
	Long: `Score computes the financial, debris, regulatory and technical
sub-scores of a mission, the weighted overall score, its viability rating
and the tiered recommendations.

  leoplan score -m mission.yml
  leoplan score -m mission.json -f json`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&missionFile, "mission", "m", "", "mission file (YAML or JSON)")
	_ = scoreCmd.MarkFlagRequired("mission")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	mission, err := planner.LoadMission(missionFile)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}

	scores := e.pipeline.Score(&mission.Params)

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	defer closeFn()

	switch f := outputFormat(e.cfg); f {
	case report.FormatJSON:
		err = report.WriteJSON(w, scores)
	case report.FormatTerminal:
		err = report.NewTerminalFormatter().FormatScores(w, scores)
	default:
		return fmt.Errorf("score: format %q not supported, use terminal or json", f)
	}
	if err != nil {
		return fmt.Errorf("score: writing output: %w", err)
	}
	return nil
}
