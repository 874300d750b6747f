// Package scorer maps mission parameters onto four sub-scores, an overall
// viability score and tiered recommendations.
package scorer

// Overall score weights for the heuristic policy. They sum to 1.
const (
	WeightFinancial  = 0.35
	WeightSafety     = 0.25 // applied to 100 - debris
	WeightRegulatory = 0.25
	WeightTechnical  = 0.15
)

// Technical proxy used by the heuristic policy in place of a computed
// technical score.
const (
	TechnicalProxyPropulsion   = 80
	TechnicalProxyNoPropulsion = 60
)

// Heuristic base scores.
const (
	BaseFinancial  = 50
	BaseDebrisRisk = 20
	BaseRegulatory = 40
)

// tier is a lower bound and the bonus earned at or above it.
type tier struct {
	min   float64
	bonus int
}

// Tiers are listed highest first; only the first match applies.
var (
	revenueTiers = []tier{
		{100_000_000, 25},
		{25_000_000, 20},
		{5_000_000, 15},
		{1_000_000, 10},
	}
	densityTiers = []tier{
		{10_000, 15},
		{1_000, 10},
		{100, 5},
	}
)

// Category market-size bonuses, strict greater-than.
const (
	LargeMarketSize   = 50_000_000_000
	LargeMarketBonus  = 10
	MediumMarketSize  = 10_000_000_000
	MediumMarketBonus = 5
)

func tierBonus(v float64, tiers []tier) int {
	for _, t := range tiers {
		if v >= t.min {
			return t.bonus
		}
	}
	return 0
}
