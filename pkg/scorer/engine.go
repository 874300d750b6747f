package scorer

import (
	"math"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// Engine scores missions with one policy against one catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog            *catalog.Catalog
	policy             Policy
	excellentThreshold int
	goodThreshold      int
}

// Option configures the Engine.
type Option func(*Engine)

// WithCatalog overrides the default reference tables.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithPolicy overrides the default heuristic policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithThresholds overrides the default EXCELLENT/GOOD thresholds.
func WithThresholds(excellent, good int) Option {
	return func(e *Engine) {
		e.excellentThreshold = excellent
		e.goodThreshold = good
	}
}

// NewEngine creates a scoring engine with optional configuration.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalog:            catalog.Default(),
		policy:             Heuristic{},
		excellentThreshold: DefaultExcellentThreshold,
		goodThreshold:      DefaultGoodThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the name of the active policy.
func (e *Engine) Policy() string {
	return e.policy.Name()
}

// Score computes a ScoreResult. A nil params is scored as the zero mission.
// Enum values are normalized first; unknown values take each rule's neutral
// branch. Sub-scores and overall are rounded only here, once.
func (e *Engine) Score(params *interfaces.MissionParameters) *interfaces.ScoreResult {
	var p interfaces.MissionParameters
	if params != nil {
		p = *params
	}
	p = catalog.Normalize(p)

	sub := e.policy.Evaluate(p, e.catalog)

	result := &interfaces.ScoreResult{
		Overall:    round(sub.Overall),
		Financial:  round(sub.Financial),
		Debris:     round(sub.Debris),
		Regulatory: round(sub.Regulatory),
		Technical:  round(sub.Technical),
		Policy:     e.policy.Name(),
	}
	result.Safety = 100 - result.Debris
	result.Rating = RatingFromScore(result.Overall, e.excellentThreshold, e.goodThreshold)
	result.Recommendations = RecommendWith(result, e.debrisGauge())
	return result
}

func (e *Engine) debrisGauge() DebrisGauge {
	if g, ok := e.policy.(gaugedPolicy); ok {
		return g.DebrisGauge()
	}
	return GaugeRisk
}

// round rounds half up and clamps to [0,100].
func round(v float64) int {
	return int(math.Floor(clamp(v) + 0.5))
}
