package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// FallbackGenerator tries a primary generator and substitutes the local
// report on any failure. Generate never returns an error.
type FallbackGenerator struct {
	primary  interfaces.ReportGenerator
	fallback *LocalGenerator
	timeout  time.Duration
}

// NewFallbackGenerator wraps primary. A positive timeout bounds each primary call.
func NewFallbackGenerator(primary interfaces.ReportGenerator, timeout time.Duration) *FallbackGenerator {
	return &FallbackGenerator{
		primary:  primary,
		fallback: NewLocalGenerator(),
		timeout:  timeout,
	}
}

// Generate implements interfaces.ReportGenerator.
func (g *FallbackGenerator) Generate(ctx context.Context, params *interfaces.MissionParameters, scores *interfaces.ScoreResult) (*interfaces.MissionReport, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	report, err := g.primary.Generate(callCtx, params, scores)
	if err == nil && report != nil {
		return report, nil
	}
	if err != nil {
		slog.Warn("AI report failed, using local report", "error", err)
	} else {
		slog.Warn("AI report empty, using local report")
	}
	return g.fallback.Build(params, scores), nil
}
