package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/report"
)

var concurrency int

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze several missions and rank them",
	Long: `Batch analyzes every mission in a file concurrently and prints them
ranked by overall score. The file is a YAML or JSON list of missions, each
with an optional name, or a mapping with a "missions" list.

  leoplan batch -m missions.yml
  leoplan batch -m missions.yml -f json`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&missionFile, "missions", "m", "", "batch file (YAML or JSON)")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "missions analyzed at once (default from config)")
	_ = batchCmd.MarkFlagRequired("missions")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	missions, err := planner.LoadMissions(missionFile)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	n := concurrency
	if n <= 0 {
		n = e.cfg.Batch.Concurrency
	}
	results, err := planner.NewEngine(e.pipeline, n).Run(cmd.Context(), missions)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer closeFn()

	ranked := planner.Rank(results)
	switch f := outputFormat(e.cfg); f {
	case report.FormatJSON:
		analyses := make([]any, 0, len(ranked))
		for _, r := range ranked {
			analyses = append(analyses, r.Analysis)
		}
		err = report.WriteJSON(w, analyses)
	case report.FormatTerminal:
		err = writeRanking(w, ranked)
	default:
		return fmt.Errorf("batch: format %q not supported, use terminal or json", f)
	}
	if err != nil {
		return fmt.Errorf("batch: writing output: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Name, r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d missions failed", failed, len(results))
	}
	return nil
}

func writeRanking(w io.Writer, ranked []planner.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tMISSION\tOVERALL\tRATING\tBEST VENDOR\tBUDGET\tSUCCESS")
	for i, r := range ranked {
		a := r.Analysis
		success := "-"
		if a.Report != nil {
			success = fmt.Sprintf("%d%%", a.Report.TechnicalInsights.SuccessProbability)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			i+1, r.Name, a.Scores.Overall, a.Scores.Rating,
			a.Cost.Insights.BestVendor.Vendor, a.Cost.Insights.BudgetFit, success)
	}
	return tw.Flush()
}
