package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/report"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Compare vendor costs for a mission",
	Long: `Cost adjusts the vendor cost table to the mission's payload mass,
schedule, altitude and constellation size, ranks vendors by weighted total
and reports budget fit and risk factors.

Missing mission fields take documented defaults, so a partial file works.

  leoplan cost -m mission.yml
  leoplan cost -m mission.yml -f xlsx -o vendors.xlsx`,
	Args: cobra.NoArgs,
	RunE: runCost,
}

func init() {
	costCmd.Flags().StringVarP(&missionFile, "mission", "m", "", "mission file (YAML or JSON)")
	_ = costCmd.MarkFlagRequired("mission")
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}
	mission, err := planner.LoadMission(missionFile)
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}

	analysis := e.pipeline.Cost(mission.CostInput())

	f := outputFormat(e.cfg)
	if f == report.FormatXLSX && output == "" {
		return fmt.Errorf("cost: xlsx output requires --output")
	}

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}
	defer closeFn()

	switch f {
	case report.FormatJSON:
		err = report.WriteJSON(w, analysis)
	case report.FormatXLSX:
		err = report.WriteWorkbook(w, analysis)
	case report.FormatTerminal:
		err = report.NewTerminalFormatter().FormatCost(w, analysis)
	default:
		return fmt.Errorf("cost: format %q not supported, use terminal, json or xlsx", f)
	}
	if err != nil {
		return fmt.Errorf("cost: writing output: %w", err)
	}
	return nil
}
