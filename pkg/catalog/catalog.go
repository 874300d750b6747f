// Package catalog holds the static reference tables the scoring engine and
// cost model read from: business-category metadata, vendor base costs and the
// lookup tables behind the reference scoring policy.
//
// A Catalog is treated as immutable once handed to an engine. Default returns
// a fresh copy on every call so callers may modify their own.
package catalog

import (
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// ScoreBias is a category's baseline for each reference-policy sub-score.
type ScoreBias struct {
	Financial  float64 `yaml:"financial" json:"financial"`
	Debris     float64 `yaml:"debris" json:"debris"`
	Regulatory float64 `yaml:"regulatory" json:"regulatory"`
}

// BusinessCategory describes a commercial LEO business line.
type BusinessCategory struct {
	Name                 string    `yaml:"name" json:"name"`
	Description          string    `yaml:"description" json:"description"`
	AvgLaunchCost        float64   `yaml:"avgLaunchCost" json:"avgLaunchCost"`   // USD
	AvgPayloadMass       float64   `yaml:"avgPayloadMass" json:"avgPayloadMass"` // kg
	DebrisRiskMultiplier float64   `yaml:"debrisRiskMultiplier" json:"debrisRiskMultiplier"`
	RegulatoryComplexity float64   `yaml:"regulatoryComplexity" json:"regulatoryComplexity"`
	MarketSize           float64   `yaml:"marketSize" json:"marketSize"`                 // USD
	TypicalRevenueMax    float64   `yaml:"typicalRevenueMax" json:"typicalRevenueMax"`   // USD per year
	PreferredAltitudes   []float64 `yaml:"preferredAltitudes" json:"preferredAltitudes"` // km
	BaseScoreBias        ScoreBias `yaml:"baseScoreBias" json:"baseScoreBias"`
}

// Catalog is the full set of reference tables.
type Catalog struct {
	Categories     map[string]BusinessCategory                       `yaml:"businessCategories" json:"businessCategories"`
	Vendors        []interfaces.VendorCostProfile                    `yaml:"vendors" json:"vendors"`
	LaunchVehicles map[interfaces.LaunchVehicle]LaunchVehicleProfile `yaml:"launchVehicles" json:"launchVehicles"`
	OrbitBands     []OrbitBand                                       `yaml:"orbitBands" json:"orbitBands"`
	DeorbitMethods map[interfaces.DeorbitMethod]DeorbitProfile       `yaml:"deorbitMethods" json:"deorbitMethods"`
	SSAStrategies  map[interfaces.SSAStrategy]SSAProfile             `yaml:"ssaStrategies" json:"ssaStrategies"`
	Markets        map[interfaces.TargetMarket]MarketProfile         `yaml:"targetMarkets" json:"targetMarkets"`
	Weights        ScoringWeights                                    `yaml:"scoringWeights" json:"scoringWeights"`
}

// Default returns the built-in reference tables.
func Default() *Catalog {
	return &Catalog{
		Categories:     defaultCategories(),
		Vendors:        DefaultVendors(),
		LaunchVehicles: defaultLaunchVehicles(),
		OrbitBands:     defaultOrbitBands(),
		DeorbitMethods: defaultDeorbitMethods(),
		SSAStrategies:  defaultSSAStrategies(),
		Markets:        defaultMarkets(),
		Weights:        DefaultScoringWeights(),
	}
}

// Category looks up a business category. The second result reports whether
// the key was known; unknown keys yield the zero category, which carries no
// market-size bonus.
func (c *Catalog) Category(key string) (BusinessCategory, bool) {
	if c == nil {
		return BusinessCategory{}, false
	}
	cat, ok := c.Categories[key]
	return cat, ok
}

func defaultCategories() map[string]BusinessCategory {
	return map[string]BusinessCategory{
		"SatCom": {
			Name:                 "Satellite Communications",
			Description:          "Providing internet, voice, and data services via satellite networks",
			AvgLaunchCost:        62_000_000,
			AvgPayloadMass:       4500,
			DebrisRiskMultiplier: 1.2,
			RegulatoryComplexity: 8,
			MarketSize:           145_000_000_000,
			TypicalRevenueMax:    500_000_000,
			PreferredAltitudes:   []float64{550, 1200, 35786},
			BaseScoreBias:        ScoreBias{Financial: 85, Debris: 60, Regulatory: 70},
		},
		"EarthObservation": {
			Name:                 "Earth Observation",
			Description:          "Monitoring Earth's surface, atmosphere, and climate for scientific and commercial use",
			AvgLaunchCost:        45_000_000,
			AvgPayloadMass:       3200,
			DebrisRiskMultiplier: 0.9,
			RegulatoryComplexity: 6,
			MarketSize:           8_200_000_000,
			TypicalRevenueMax:    100_000_000,
			PreferredAltitudes:   []float64{400, 600, 800},
			BaseScoreBias:        ScoreBias{Financial: 75, Debris: 70, Regulatory: 80},
		},
		"InSpaceManufacturing": {
			Name:                 "In-Space Manufacturing",
			Description:          "Manufacturing products in the unique environment of space (microgravity, vacuum)",
			AvgLaunchCost:        95_000_000,
			AvgPayloadMass:       8000,
			DebrisRiskMultiplier: 1.5,
			RegulatoryComplexity: 9,
			MarketSize:           2_500_000_000,
			TypicalRevenueMax:    50_000_000,
			PreferredAltitudes:   []float64{400, 500},
			BaseScoreBias:        ScoreBias{Financial: 65, Debris: 55, Regulatory: 60},
		},
		"LEOInfrastructure": {
			Name:                 "LEO Infrastructure & Servicing",
			Description:          "Building and maintaining infrastructure in Low Earth Orbit, including satellite servicing",
			AvgLaunchCost:        78_000_000,
			AvgPayloadMass:       6200,
			DebrisRiskMultiplier: 1.1,
			RegulatoryComplexity: 7,
			MarketSize:           4_800_000_000,
			TypicalRevenueMax:    150_000_000,
			PreferredAltitudes:   []float64{500, 700, 900},
			BaseScoreBias:        ScoreBias{Financial: 70, Debris: 65, Regulatory: 65},
		},
	}
}
