package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// MarkdownFormatter writes an analysis as Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the analysis as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, a *interfaces.Analysis) error {
	fmt.Fprintf(w, "# %s %s\n\n", displayName(a), ratingBadge(a.Scores.Rating))
	f.writeScores(w, &a.Scores)
	f.writeRecommendations(w, a.Scores.Recommendations)
	f.writeCost(w, &a.Cost)
	if a.Report != nil {
		f.writeReport(w, a.Report)
	}
	f.writeFooter(w, a)
	return nil
}

func (f *MarkdownFormatter) writeScores(w io.Writer, s *interfaces.ScoreResult) {
	fmt.Fprintln(w, "## Scores")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Overall** | %d/100 |\n", s.Overall)
	fmt.Fprintf(w, "| **Rating** | %s |\n", s.Rating)
	fmt.Fprintf(w, "| Financial Viability | %d |\n", s.Financial)
	fmt.Fprintf(w, "| Debris Risk | %d |\n", s.Debris)
	fmt.Fprintf(w, "| Orbital Safety | %d |\n", s.Safety)
	fmt.Fprintf(w, "| Regulatory Compliance | %d |\n", s.Regulatory)
	fmt.Fprintf(w, "| Technical Feasibility | %d |\n", s.Technical)
	if s.Policy != "" {
		fmt.Fprintf(w, "| Scoring Policy | %s |\n", s.Policy)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeRecommendations(w io.Writer, r interfaces.Recommendations) {
	fmt.Fprintln(w, "## Recommendations")
	fmt.Fprintln(w)
	writeList(w, "Mandatory", r.Mandatory)
	writeList(w, "Recommended", r.Recommended)
	writeList(w, "Baseline", r.Baseline)
}

func (f *MarkdownFormatter) writeCost(w io.Writer, c *interfaces.CostAnalysis) {
	if len(c.TotalByVendor) == 0 {
		return
	}

	fmt.Fprintln(w, "## Vendor Costs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Rank | Vendor | Weighted Total |")
	fmt.Fprintln(w, "|------|--------|----------------|")
	for i, vt := range c.TotalByVendor {
		fmt.Fprintf(w, "| %d | %s | %s |\n", i+1, vt.Vendor, money(vt.Total))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Stage | Best Vendor | Adjusted Cost |")
	fmt.Fprintln(w, "|-------|-------------|---------------|")
	for _, st := range interfaces.Stages {
		best, ok := c.BestByStage[st]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "| %s | %s | %s |\n", st, best.Vendor, money(float64(best.CostUSD)))
	}
	fmt.Fprintln(w)

	in := c.Insights
	fmt.Fprintf(w, "**Budget fit:** %s (ratio %.2f, budget %s, average cost %s)\n\n",
		in.BudgetFit, in.BudgetRatio, money(in.TotalBudget), money(in.AverageCost))
	fmt.Fprintf(w, "**Potential savings:** %s choosing %s over %s\n\n",
		money(in.Savings), in.BestVendor.Vendor, in.WorstVendor.Vendor)
	writeList(w, "Cost Risk Factors", in.RiskFactors)
}

func (f *MarkdownFormatter) writeReport(w io.Writer, r *interfaces.MissionReport) {
	fmt.Fprintln(w, "## Mission Report")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n\n", r.Summary)

	fmt.Fprintln(w, "### Environmental Impact")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n\n%s\n\n%s\n\n", r.EnvironmentalImpact.DebrisRiskAssessment,
		r.EnvironmentalImpact.OrbitalSustainability, r.EnvironmentalImpact.CollisionProbability)
	writeList(w, "Mitigation Strategies", r.EnvironmentalImpact.MitigationStrategies)

	fmt.Fprintln(w, "### Regulatory Notes")
	fmt.Fprintln(w)
	writeList(w, "Licensing Requirements", r.RegulatoryNotes.LicensingRequirements)
	writeList(w, "Compliance Checklist", r.RegulatoryNotes.ComplianceChecklist)
	writeList(w, "International Considerations", r.RegulatoryNotes.InternationalConsiderations)

	fmt.Fprintln(w, "### Financial Analysis")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n\n", r.FinancialAnalysis.CostBreakdown)
	writeList(w, "Risk Factors", r.FinancialAnalysis.RiskFactors)
	writeList(w, "Market Opportunities", r.FinancialAnalysis.MarketOpportunities)
	fmt.Fprintf(w, "%s\n\n", r.FinancialAnalysis.ROIProjection)

	fmt.Fprintln(w, "### Technical Insights")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n\n%s\n\n%s\n\n", r.TechnicalInsights.LaunchWindowOptimization,
		r.TechnicalInsights.OrbitalMechanics, r.TechnicalInsights.MissionTimeline)
	fmt.Fprintf(w, "**Success probability:** %d%%\n\n", r.TechnicalInsights.SuccessProbability)
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, a *interfaces.Analysis) {
	source := "none"
	if a.Report != nil && a.Report.Source != "" {
		source = a.Report.Source
	}
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*Analysis ID: %s | Report: %s | Generated: %s*\n",
		a.ID, source, a.Timestamp.Format("2006-01-02 15:04:05"))
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "**%s**\n\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "- %s\n", strings.TrimSpace(it))
	}
	fmt.Fprintln(w)
}

// ratingBadge returns a text badge based on the rating.
func ratingBadge(r interfaces.Rating) string {
	switch r {
	case interfaces.RatingExcellent:
		return "🟢"
	case interfaces.RatingGood:
		return "🟡"
	case interfaces.RatingChallenging:
		return "🔴"
	default:
		return "⚪"
	}
}
