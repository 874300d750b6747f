package catalog

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// LaunchVehicleProfile describes a launch vehicle class for the reference policy.
type LaunchVehicleProfile struct {
	CostMultiplier     float64 `yaml:"costMultiplier" json:"costMultiplier"`
	DebrisRiskModifier float64 `yaml:"debrisRiskModifier" json:"debrisRiskModifier"`
	ReliabilityScore   float64 `yaml:"reliabilityScore" json:"reliabilityScore"` // 0-100
}

// OrbitBand is an altitude band. Bands are matched in order; the first band
// whose MaxAltitude exceeds the target altitude wins. A MaxAltitude of 0 marks
// the open-ended top band.
type OrbitBand struct {
	Key                   string  `yaml:"key" json:"key"`
	MaxAltitude           float64 `yaml:"maxAltitude" json:"maxAltitude"` // km, exclusive
	DebrisRiskFactor      float64 `yaml:"debrisRiskFactor" json:"debrisRiskFactor"`
	OperationalComplexity float64 `yaml:"operationalComplexity" json:"operationalComplexity"`
}

// DeorbitProfile describes a disposal method.
type DeorbitProfile struct {
	ReliabilityScore float64 `yaml:"reliabilityScore" json:"reliabilityScore"` // 0-100
	RegulatoryBonus  float64 `yaml:"regulatoryBonus" json:"regulatoryBonus"`
}

// SSAProfile describes a space situational awareness strategy.
type SSAProfile struct {
	AccuracyScore   float64 `yaml:"accuracyScore" json:"accuracyScore"` // 0-100
	RegulatoryBonus float64 `yaml:"regulatoryBonus" json:"regulatoryBonus"`
}

// MarketProfile describes a target market.
type MarketProfile struct {
	ContractStability    float64 `yaml:"contractStability" json:"contractStability"`   // 0-100
	PaymentReliability   float64 `yaml:"paymentReliability" json:"paymentReliability"` // 0-100
	RegulatoryComplexity float64 `yaml:"regulatoryComplexity" json:"regulatoryComplexity"`
}

// ScoringWeights combine the reference-policy sub-scores. They must sum to 1.
type ScoringWeights struct {
	Financial  float64 `yaml:"financial" json:"financial"`
	Debris     float64 `yaml:"debris" json:"debris"`
	Regulatory float64 `yaml:"regulatory" json:"regulatory"`
	Technical  float64 `yaml:"technical" json:"technical"`
}

// Sum returns the total of all weights.
func (w ScoringWeights) Sum() float64 {
	return w.Financial + w.Debris + w.Regulatory + w.Technical
}

// DefaultScoringWeights returns the reference-policy weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Financial: 0.30, Debris: 0.25, Regulatory: 0.25, Technical: 0.20}
}

// Neutral fallbacks for keys missing from the reference tables.
var (
	neutralCategory = BusinessCategory{
		AvgLaunchCost:        60_000_000,
		AvgPayloadMass:       4000,
		DebrisRiskMultiplier: 1.0,
		RegulatoryComplexity: 7,
		TypicalRevenueMax:    100_000_000,
		BaseScoreBias:        ScoreBias{Financial: 70, Debris: 60, Regulatory: 65},
	}
	neutralVehicle = LaunchVehicleProfile{CostMultiplier: 1.0, DebrisRiskModifier: 0.1, ReliabilityScore: 90}
	neutralDeorbit = DeorbitProfile{ReliabilityScore: 50, RegulatoryBonus: 5}
	neutralSSA     = SSAProfile{AccuracyScore: 60, RegulatoryBonus: 5}
	neutralMarket  = MarketProfile{ContractStability: 70, PaymentReliability: 80, RegulatoryComplexity: 1.0}
	neutralBand    = OrbitBand{Key: "unknown", DebrisRiskFactor: 1.0, OperationalComplexity: 1.0}
)

// CategoryOrNeutral returns the named category or the neutral reference category.
func (c *Catalog) CategoryOrNeutral(key string) BusinessCategory {
	if cat, ok := c.Category(key); ok {
		return cat
	}
	return neutralCategory
}

// LaunchVehicle returns the vehicle profile or a neutral default.
func (c *Catalog) LaunchVehicle(v interfaces.LaunchVehicle) LaunchVehicleProfile {
	if c != nil {
		if p, ok := c.LaunchVehicles[v]; ok {
			return p
		}
	}
	return neutralVehicle
}

// Deorbit returns the disposal profile or a neutral default.
func (c *Catalog) Deorbit(m interfaces.DeorbitMethod) DeorbitProfile {
	if c != nil {
		if p, ok := c.DeorbitMethods[m]; ok {
			return p
		}
	}
	return neutralDeorbit
}

// SSA returns the SSA profile or a neutral default.
func (c *Catalog) SSA(s interfaces.SSAStrategy) SSAProfile {
	if c != nil {
		if p, ok := c.SSAStrategies[s]; ok {
			return p
		}
	}
	return neutralSSA
}

// Market returns the market profile or a neutral default.
func (c *Catalog) Market(m interfaces.TargetMarket) MarketProfile {
	if c != nil {
		if p, ok := c.Markets[m]; ok {
			return p
		}
	}
	return neutralMarket
}

// Band returns the orbit band containing altitude.
func (c *Catalog) Band(altitude float64) OrbitBand {
	if c == nil || len(c.OrbitBands) == 0 {
		return neutralBand
	}
	for _, b := range c.OrbitBands {
		if b.MaxAltitude == 0 || altitude < b.MaxAltitude {
			return b
		}
	}
	return c.OrbitBands[len(c.OrbitBands)-1]
}

func defaultLaunchVehicles() map[interfaces.LaunchVehicle]LaunchVehicleProfile {
	return map[interfaces.LaunchVehicle]LaunchVehicleProfile{
		interfaces.VehicleSmall:     {CostMultiplier: 1.2, DebrisRiskModifier: 0.05, ReliabilityScore: 88},
		interfaces.VehicleMedium:    {CostMultiplier: 1.0, DebrisRiskModifier: 0.10, ReliabilityScore: 95},
		interfaces.VehicleHeavy:     {CostMultiplier: 1.4, DebrisRiskModifier: 0.15, ReliabilityScore: 93},
		interfaces.VehicleRideshare: {CostMultiplier: 0.7, DebrisRiskModifier: 0.05, ReliabilityScore: 90},
	}
}

func defaultOrbitBands() []OrbitBand {
	return []OrbitBand{
		{Key: "200-400", MaxAltitude: 400, DebrisRiskFactor: 0.6, OperationalComplexity: 1.0},
		{Key: "400-600", MaxAltitude: 600, DebrisRiskFactor: 1.0, OperationalComplexity: 1.1},
		{Key: "600-1000", MaxAltitude: 1000, DebrisRiskFactor: 1.5, OperationalComplexity: 1.25},
		{Key: "1000+", DebrisRiskFactor: 1.8, OperationalComplexity: 1.4},
	}
}

func defaultDeorbitMethods() map[interfaces.DeorbitMethod]DeorbitProfile {
	return map[interfaces.DeorbitMethod]DeorbitProfile{
		interfaces.DeorbitActivePropulsion: {ReliabilityScore: 95, RegulatoryBonus: 20},
		interfaces.DeorbitDragEnhancement:  {ReliabilityScore: 80, RegulatoryBonus: 12},
		interfaces.DeorbitRemovalService:   {ReliabilityScore: 85, RegulatoryBonus: 15},
	}
}

func defaultSSAStrategies() map[interfaces.SSAStrategy]SSAProfile {
	return map[interfaces.SSAStrategy]SSAProfile{
		interfaces.SSACommercial: {AccuracyScore: 90, RegulatoryBonus: 15},
		interfaces.SSAInHouse:    {AccuracyScore: 80, RegulatoryBonus: 10},
		interfaces.SSAPublicData: {AccuracyScore: 60, RegulatoryBonus: 5},
	}
}

func defaultMarkets() map[interfaces.TargetMarket]MarketProfile {
	return map[interfaces.TargetMarket]MarketProfile{
		interfaces.MarketGovernment: {ContractStability: 90, PaymentReliability: 95, RegulatoryComplexity: 1.2},
		interfaces.MarketEnterprise: {ContractStability: 75, PaymentReliability: 85, RegulatoryComplexity: 1.0},
		interfaces.MarketConsumer:   {ContractStability: 55, PaymentReliability: 70, RegulatoryComplexity: 0.9},
	}
}
