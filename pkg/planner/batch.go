package planner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// DefaultConcurrency bounds how many missions a batch analyzes at once.
const DefaultConcurrency = 4

// Result is the outcome of one mission in a batch.
type Result struct {
	Name     string
	Analysis *interfaces.Analysis
	Err      error
}

// missionRunner is implemented by pipelines that price a mission from its
// decoded cost fields; other pipelines get the bare parameters.
type missionRunner interface {
	RunMission(ctx context.Context, m Mission) (*interfaces.Analysis, error)
}

// Engine analyzes many missions concurrently through one pipeline.
type Engine struct {
	pipeline    interfaces.Pipeline
	concurrency int
}

// NewEngine creates a batch engine. A concurrency below one uses DefaultConcurrency.
func NewEngine(pipeline interfaces.Pipeline, concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Engine{pipeline: pipeline, concurrency: concurrency}
}

// Run analyzes every mission. A failing mission does not stop the others;
// its error is recorded in its Result. Results keep the input order.
// On cancellation every mission that did not complete carries the context error.
func (e *Engine) Run(ctx context.Context, missions []Mission) ([]Result, error) {
	if len(missions) == 0 {
		slog.Info("no missions to analyze")
		return nil, nil
	}

	slog.Info("starting batch", "missions", len(missions), "concurrency", e.concurrency)
	start := time.Now()

	results := make([]Result, len(missions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, m := range missions {
		results[i].Name = m.Name
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			a, err := e.run(gctx, m)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					results[i].Err = cerr
					return cerr
				}
				slog.Error("mission failed", "name", m.Name, "error", err)
				results[i].Err = fmt.Errorf("mission %s: %w", m.Name, err)
				return nil
			}
			a.Name = m.Name
			results[i].Analysis = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("batch cancelled", "error", err)
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	slog.Info("batch complete", "missions", len(missions), "duration", time.Since(start))
	return results, nil
}

func (e *Engine) run(ctx context.Context, m Mission) (*interfaces.Analysis, error) {
	if r, ok := e.pipeline.(missionRunner); ok {
		return r.RunMission(ctx, m)
	}
	params := m.Params
	return e.pipeline.Run(ctx, &params)
}

// Rank returns the successful results ordered by overall score, highest
// first, then by name.
func Rank(results []Result) []Result {
	ranked := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Analysis != nil {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		oi, oj := ranked[i].Analysis.Scores.Overall, ranked[j].Analysis.Scores.Overall
		if oi != oj {
			return oi > oj
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
