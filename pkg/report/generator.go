// Package report assembles mission analyses and renders them for terminals,
// JSON consumers, Markdown, HTML and spreadsheets.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// Formatter writes an analysis to a writer.
type Formatter interface {
	Format(w io.Writer, a *interfaces.Analysis) error
}

// Generator builds Analysis envelopes from the engine outputs.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates an analysis generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate wraps the scores, cost analysis and narrative report of one mission.
// start is when the work began and is used for Duration. rpt may be nil.
func (g *Generator) Generate(name string, mission *interfaces.MissionParameters, scores *interfaces.ScoreResult, cost *interfaces.CostAnalysis, rpt *interfaces.MissionReport, start time.Time) *interfaces.Analysis {
	now := g.now()
	a := &interfaces.Analysis{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: now,
		Report:    rpt,
		Duration:  now.Sub(start),
	}
	if mission != nil {
		a.Mission = *mission
	}
	if scores != nil {
		a.Scores = *scores
	}
	if cost != nil {
		a.Cost = *cost
	}
	return a
}

// Summary creates a one-line summary of the analysis.
func Summary(a *interfaces.Analysis) string {
	s := fmt.Sprintf("Mission Score: %d/100 [%s]", a.Scores.Overall, a.Scores.Rating)
	if best := a.Cost.Insights.BestVendor; best.Vendor != "" {
		s += fmt.Sprintf(", best vendor %s at %s (budget %s)", best.Vendor, money(best.Total), a.Cost.Insights.BudgetFit)
	}
	return s
}

// money formats a USD amount rounded to whole dollars.
func money(v float64) string {
	return "$" + humanize.Commaf(math.Round(v))
}

// displayName falls back to the business category when the analysis is unnamed.
func displayName(a *interfaces.Analysis) string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Mission.BusinessCategory != "":
		return a.Mission.BusinessCategory + " mission"
	default:
		return "Mission"
	}
}
