package scorer

import (
	"math"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// SubScores are a policy's unrounded results. Every sub-score is already
// clamped to [0,100], so Overall is too. Debris is a risk: higher is worse.
type SubScores struct {
	Financial  float64
	Debris     float64
	Regulatory float64
	Technical  float64
	Overall    float64
}

// DebrisGauge names the debris value a policy's recommendation rules read.
type DebrisGauge int

const (
	// GaugeRisk compares the risk score: a low value triggers.
	GaugeRisk DebrisGauge = iota
	// GaugeSafety compares the safety score (100 - risk): a low value triggers.
	GaugeSafety
)

// value returns the debris figure of s the triggers compare against.
func (g DebrisGauge) value(s *interfaces.ScoreResult) int {
	if g == GaugeSafety {
		return s.Safety
	}
	return s.Debris
}

// gaugedPolicy is implemented by policies whose debris rules read safety.
// Policies without it use GaugeRisk.
type gaugedPolicy interface {
	DebrisGauge() DebrisGauge
}

// Policy is one scoring formulation.
type Policy interface {
	// Name returns the unique identifier for this policy.
	Name() string

	// Evaluate scores normalized mission parameters against the catalog.
	Evaluate(p interfaces.MissionParameters, c *catalog.Catalog) SubScores
}

// clamp bounds v to [0,100]. NaN maps to 0.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// ratio divides, returning 0 when the denominator is not positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
