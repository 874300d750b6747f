// Package planner runs the complete planning workflow for a mission:
// scoring, vendor pricing and the narrative report.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/costmodel"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/report"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/scorer"
)

// Pipeline implements interfaces.Pipeline. It holds no per-call state and is
// safe for concurrent use as long as its report generator is.
type Pipeline struct {
	scorer   *scorer.Engine
	cost     *costmodel.Model
	reports  interfaces.ReportGenerator
	analyses *report.Generator
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithScorer sets the scoring engine.
func WithScorer(e *scorer.Engine) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.scorer = e
		}
	}
}

// WithCostModel sets the vendor cost model.
func WithCostModel(m *costmodel.Model) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.cost = m
		}
	}
}

// WithReportGenerator sets the narrative report generator.
func WithReportGenerator(g interfaces.ReportGenerator) Option {
	return func(p *Pipeline) {
		if g != nil {
			p.reports = g
		}
	}
}

// NewPipeline creates a pipeline. Without options it uses the heuristic
// scorer, the default vendor table and the local report generator.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		scorer:   scorer.NewEngine(),
		cost:     costmodel.New(),
		reports:  ai.NewLocalGenerator(),
		analyses: report.NewGenerator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Score runs only the scoring engine.
func (p *Pipeline) Score(params *interfaces.MissionParameters) *interfaces.ScoreResult {
	return p.scorer.Score(params)
}

// Cost runs only the cost model.
func (p *Pipeline) Cost(in costmodel.Input) *interfaces.CostAnalysis {
	return p.cost.Analyze(in)
}

// Report scores the mission and asks the report generator for a narrative.
func (p *Pipeline) Report(ctx context.Context, params *interfaces.MissionParameters) (*interfaces.MissionReport, *interfaces.ScoreResult, error) {
	if params == nil {
		return nil, nil, fmt.Errorf("planner: mission parameters are required")
	}
	scores := p.scorer.Score(params)
	rpt, err := p.reports.Generate(ctx, params, scores)
	if err != nil {
		return nil, scores, fmt.Errorf("planner: generating report: %w", err)
	}
	return rpt, scores, nil
}

// Run implements interfaces.Pipeline.
func (p *Pipeline) Run(ctx context.Context, params *interfaces.MissionParameters) (*interfaces.Analysis, error) {
	return p.RunNamed(ctx, "", params)
}

// RunNamed is Run with a display name attached to the analysis. params is
// priced as a complete record.
func (p *Pipeline) RunNamed(ctx context.Context, name string, params *interfaces.MissionParameters) (*interfaces.Analysis, error) {
	if params == nil {
		return nil, fmt.Errorf("planner: mission parameters are required")
	}
	return p.RunMission(ctx, Mission{Name: name, Params: *params})
}

// RunMission analyzes a decoded mission, pricing it from m.CostInput so
// cost fields absent from the source take their defaults.
func (p *Pipeline) RunMission(ctx context.Context, m Mission) (*interfaces.Analysis, error) {
	name, params := m.Name, &m.Params
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	rpt, scores, err := p.Report(ctx, params)
	if err != nil {
		return nil, err
	}
	cost := p.cost.Analyze(m.CostInput())

	a := p.analyses.Generate(name, params, scores, cost, rpt, start)
	slog.Info("mission analyzed",
		"name", name,
		"overall", scores.Overall,
		"rating", scores.Rating,
		"best_vendor", cost.Insights.BestVendor.Vendor,
		"report", rpt.Source,
		"duration", a.Duration,
	)
	return a, nil
}
