package scorer

import (
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// PolicyHeuristic is the name of the rule-of-thumb policy behind the dashboard.
const PolicyHeuristic = "heuristic"

// Heuristic scores a mission with additive bracket bonuses and penalties.
type Heuristic struct{}

// Name implements Policy.
func (Heuristic) Name() string { return PolicyHeuristic }

// Evaluate implements Policy.
func (Heuristic) Evaluate(p interfaces.MissionParameters, c *catalog.Catalog) SubScores {
	financial := clamp(float64(heuristicFinancial(p, c)))
	debris := clamp(float64(heuristicDebris(p)))
	regulatory := clamp(float64(heuristicRegulatory(p)))

	technical := float64(TechnicalProxyNoPropulsion)
	if p.InSpacePropulsion {
		technical = TechnicalProxyPropulsion
	}

	return SubScores{
		Financial:  financial,
		Debris:     debris,
		Regulatory: regulatory,
		Technical:  technical,
		Overall: WeightFinancial*financial +
			WeightSafety*(100-debris) +
			WeightRegulatory*regulatory +
			WeightTechnical*technical,
	}
}

func heuristicFinancial(p interfaces.MissionParameters, c *catalog.Catalog) int {
	score := BaseFinancial
	score += tierBonus(p.TargetRevenue, revenueTiers)
	score += tierBonus(p.ProductValueDensity, densityTiers)

	switch p.TargetMarket {
	case interfaces.MarketGovernment:
		score += 15
	case interfaces.MarketEnterprise:
		score += 10
	case interfaces.MarketConsumer:
		score += 5
	}

	if cat, ok := c.Category(p.BusinessCategory); ok {
		switch {
		case cat.MarketSize > LargeMarketSize:
			score += LargeMarketBonus
		case cat.MarketSize > MediumMarketSize:
			score += MediumMarketBonus
		}
	}
	return score
}

func heuristicDebris(p interfaces.MissionParameters) int {
	risk := BaseDebrisRisk

	switch {
	case p.TargetAltitude > 800:
		risk += 40
	case p.TargetAltitude > 600:
		risk += 30
	case p.TargetAltitude > 400:
		risk += 20
	default:
		risk += 10
	}

	switch {
	case p.ConstellationSize > 50:
		risk += 25
	case p.ConstellationSize > 20:
		risk += 15
	case p.ConstellationSize > 10:
		risk += 10
	default:
		risk += 5
	}

	switch {
	case p.MissionLifespan > 10:
		risk += 15
	case p.MissionLifespan > 7:
		risk += 10
	case p.MissionLifespan > 5:
		risk += 5
	}

	if p.InSpacePropulsion {
		risk -= 15
	}

	switch p.DeorbitMethod {
	case interfaces.DeorbitActivePropulsion:
		risk -= 10
	case interfaces.DeorbitDragEnhancement:
		risk -= 5
	}
	return risk
}

func heuristicRegulatory(p interfaces.MissionParameters) int {
	score := BaseRegulatory

	switch p.TargetMarket {
	case interfaces.MarketGovernment:
		score += 20
	case interfaces.MarketEnterprise:
		score += 15
	default:
		score += 10
	}

	switch p.SSAStrategy {
	case interfaces.SSACommercial:
		score += 20
	case interfaces.SSAInHouse:
		score += 15
	default:
		score += 10
	}

	switch p.DataLicensing {
	case interfaces.LicensingOpen:
		score += 15
	case interfaces.LicensingRestricted:
		score += 10
	default:
		score += 5
	}

	switch p.DeorbitMethod {
	case interfaces.DeorbitActivePropulsion:
		score += 15
	case interfaces.DeorbitDragEnhancement:
		score += 10
	default:
		score += 5
	}

	switch {
	case p.MissionLifespan <= 7:
		score += 10
	case p.MissionLifespan <= 10:
		score += 5
	}
	return score
}
