package scorer

import (
	"math"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// PolicyReference is the name of the table-driven policy.
const PolicyReference = "reference"

// Reference scores a mission from the catalog's launch-vehicle, orbit-band,
// deorbit, SSA and market tables. Its debris formula yields a safety value
// which Evaluate converts to a risk so both policies report debris the same way.
type Reference struct{}

// Name implements Policy.
func (Reference) Name() string { return PolicyReference }

// DebrisGauge reports that the table-driven rules fire on low safety.
func (Reference) DebrisGauge() DebrisGauge { return GaugeSafety }

// Evaluate implements Policy.
func (Reference) Evaluate(p interfaces.MissionParameters, c *catalog.Catalog) SubScores {
	cat := c.CategoryOrNeutral(p.BusinessCategory)
	vehicle := c.LaunchVehicle(p.LaunchVehicleType)
	band := c.Band(p.TargetAltitude)
	deorbit := c.Deorbit(p.DeorbitMethod)
	ssa := c.SSA(p.SSAStrategy)
	market := c.Market(p.TargetMarket)

	weights := catalog.DefaultScoringWeights()
	if c != nil {
		weights = c.Weights
	}

	// Financial.
	revenueRatio := ratio(p.TargetRevenue, cat.TypicalRevenueMax)
	costEfficiency := ratio(p.ProductValueDensity*cat.AvgPayloadMass, cat.AvgLaunchCost*vehicle.CostMultiplier)
	marketStability := market.ContractStability * market.PaymentReliability / 100
	financial := clamp(cat.BaseScoreBias.Financial *
		(0.4*math.Min(1, revenueRatio*2) +
			0.4*math.Min(1, costEfficiency*0.1) +
			0.2*marketStability/100) * 1.2)

	// Safety, higher is better.
	riskFactor := cat.DebrisRiskMultiplier * band.DebrisRiskFactor * (1 + vehicle.DebrisRiskModifier)
	lifespanPenalty := math.Max(0, (p.MissionLifespan-5)*0.1)
	safety := clamp(cat.BaseScoreBias.Debris -
		riskFactor*20 +
		deorbit.ReliabilityScore/100*20 +
		ssa.AccuracyScore/100*15 -
		lifespanPenalty)

	// Regulatory.
	complexity := market.RegulatoryComplexity
	if complexity <= 0 {
		complexity = 1
	}
	var licensing float64
	switch p.DataLicensing {
	case interfaces.LicensingPrivate:
		licensing = -10
	case interfaces.LicensingRestricted:
		licensing = -5
	}
	regulatory := clamp(cat.BaseScoreBias.Regulatory/complexity + deorbit.RegulatoryBonus + ssa.RegulatoryBonus + licensing)

	// Technical.
	size := math.Max(0, float64(p.ConstellationSize))
	operational := band.OperationalComplexity
	if operational <= 0 {
		operational = 1
	}
	propulsion := 0.0
	if p.InSpacePropulsion {
		propulsion = 15
	}
	technical := clamp((vehicle.ReliabilityScore - math.Log10(size+1)*10 + propulsion) / operational)

	return SubScores{
		Financial:  financial,
		Debris:     100 - safety,
		Regulatory: regulatory,
		Technical:  technical,
		Overall: clamp(weights.Financial*financial +
			weights.Debris*safety +
			weights.Regulatory*regulatory +
			weights.Technical*technical),
	}
}
