package report

import (
	"fmt"
	"io"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// TerminalFormatter writes a color-coded analysis to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the analysis to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, a *interfaces.Analysis) error {
	f.writeHeader(w, displayName(a))
	f.writeScores(w, &a.Scores)
	f.writeCost(w, &a.Cost)
	if a.Report != nil {
		f.writeReport(w, a.Report)
	}
	f.writeFooter(w, a)
	return nil
}

// FormatScores writes only the scores and recommendations.
func (f *TerminalFormatter) FormatScores(w io.Writer, s *interfaces.ScoreResult) error {
	f.writeHeader(w, "Mission Scores")
	f.writeScores(w, s)
	return nil
}

// FormatCost writes only the vendor cost comparison.
func (f *TerminalFormatter) FormatCost(w io.Writer, c *interfaces.CostAnalysis) error {
	f.writeHeader(w, "Vendor Cost Analysis")
	f.writeCost(w, c)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  %s%s\n", colorBold, colorCyan, title, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeScores(w io.Writer, s *interfaces.ScoreResult) {
	color := ratingColor(s.Rating)
	fmt.Fprintf(w, "  %s%sMission Score: %d/100 [%s]%s\n\n", colorBold, color, s.Overall, s.Rating, colorReset)

	fmt.Fprintf(w, "    Financial viability    %3d\n", s.Financial)
	fmt.Fprintf(w, "    Debris risk            %3d  %s(safety %d)%s\n", s.Debris, colorDim, s.Safety, colorReset)
	fmt.Fprintf(w, "    Regulatory compliance  %3d\n", s.Regulatory)
	fmt.Fprintf(w, "    Technical feasibility  %3d\n\n", s.Technical)

	writeTier(w, "MANDATORY", colorRed, s.Recommendations.Mandatory)
	writeTier(w, "RECOMMENDED", colorYellow, s.Recommendations.Recommended)
	writeTier(w, "BASELINE", colorDim, s.Recommendations.Baseline)
}

func (f *TerminalFormatter) writeCost(w io.Writer, c *interfaces.CostAnalysis) {
	if len(c.TotalByVendor) == 0 {
		fmt.Fprintf(w, "  %sNo vendor cost data.%s\n\n", colorDim, colorReset)
		return
	}

	fmt.Fprintf(w, "  %s── VENDORS ──%s\n", colorBold, colorReset)
	for i, vt := range c.TotalByVendor {
		color := colorReset
		if i == 0 {
			color = colorGreen
		}
		fmt.Fprintf(w, "    %s%d. %-12s %16s%s\n", color, i+1, vt.Vendor, money(vt.Total), colorReset)
	}
	fmt.Fprintln(w)

	for _, st := range interfaces.Stages {
		if best, ok := c.BestByStage[st]; ok {
			fmt.Fprintf(w, "    %-15s %s%s%s (%s)\n", st, colorCyan, best.Vendor, colorReset, money(float64(best.CostUSD)))
		}
	}
	fmt.Fprintln(w)

	in := c.Insights
	fmt.Fprintf(w, "  %sBudget fit: %s%s (ratio %.2f), savings %s\n", budgetColor(in.BudgetFit), in.BudgetFit, colorReset, in.BudgetRatio, money(in.Savings))
	for _, r := range in.RiskFactors {
		fmt.Fprintf(w, "    %s→ %s%s\n", colorYellow, r, colorReset)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeReport(w io.Writer, r *interfaces.MissionReport) {
	fmt.Fprintf(w, "  %s── REPORT ──%s\n", colorBold, colorReset)
	fmt.Fprintf(w, "    %s\n\n", r.Summary)
	fmt.Fprintf(w, "    Success probability: %s%d%%%s\n\n", colorBold, r.TechnicalInsights.SuccessProbability, colorReset)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, a *interfaces.Analysis) {
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sAnalysis: %s | Duration: %s%s\n", colorDim, a.ID, a.Duration, colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n", colorDim, a.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

func writeTier(w io.Writer, label, color string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s%s── %s (%d) ──%s\n", colorBold, color, label, len(items), colorReset)
	for _, it := range items {
		fmt.Fprintf(w, "    • %s\n", it)
	}
	fmt.Fprintln(w)
}

// ratingColor returns the ANSI color for a rating.
func ratingColor(r interfaces.Rating) string {
	switch r {
	case interfaces.RatingExcellent:
		return colorGreen
	case interfaces.RatingGood:
		return colorYellow
	case interfaces.RatingChallenging:
		return colorRed
	default:
		return colorReset
	}
}

func budgetColor(b interfaces.BudgetFit) string {
	switch b {
	case interfaces.BudgetComfortable:
		return colorGreen
	case interfaces.BudgetTight:
		return colorYellow
	default:
		return colorRed
	}
}
