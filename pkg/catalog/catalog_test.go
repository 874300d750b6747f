package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Vendors[0].Stages[0].CostUSD = 1
	a.Categories["SatCom"] = BusinessCategory{}

	assert.Equal(t, int64(18_000_000), b.Vendors[0].Stages[0].CostUSD)
	assert.Equal(t, 145_000_000_000.0, b.Categories["SatCom"].MarketSize)
}

func TestDefault_WeightsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestCategory_Unknown(t *testing.T) {
	c := Default()
	_, ok := c.Category("AsteroidMining")
	assert.False(t, ok)

	var nilCatalog *Catalog
	_, ok = nilCatalog.Category("SatCom")
	assert.False(t, ok)
	assert.Equal(t, neutralCategory, nilCatalog.CategoryOrNeutral("SatCom"))
}

func TestBand(t *testing.T) {
	c := Default()
	tests := []struct {
		altitude float64
		want     string
	}{
		{0, "200-400"},
		{399.9, "200-400"},
		{400, "400-600"},
		{550, "400-600"},
		{600, "600-1000"},
		{999, "600-1000"},
		{1000, "1000+"},
		{36000, "1000+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Band(tt.altitude).Key, "altitude %v", tt.altitude)
	}
}

func TestLookups_FallBackToNeutral(t *testing.T) {
	c := Default()
	assert.Equal(t, neutralVehicle, c.LaunchVehicle("Balloon"))
	assert.Equal(t, neutralDeorbit, c.Deorbit("Hope"))
	assert.Equal(t, neutralSSA, c.SSA("Telescope"))
	assert.Equal(t, neutralMarket, c.Market("Martians"))

	var nilCatalog *Catalog
	assert.Equal(t, neutralBand, nilCatalog.Band(500))
}

func TestNormalize(t *testing.T) {
	p := Normalize(interfaces.MissionParameters{
		BusinessCategory:  "  SatCom ",
		LaunchVehicleType: "SmallDedicated",
		DeorbitMethod:     "atmospheric drag",
		SSAStrategy:       "in_house",
		TargetMarket:      "DirectConsumer",
		DataLicensing:     "PRIVATE",
	})

	assert.Equal(t, "SatCom", p.BusinessCategory)
	assert.Equal(t, interfaces.VehicleSmall, p.LaunchVehicleType)
	assert.Equal(t, interfaces.DeorbitDragEnhancement, p.DeorbitMethod)
	assert.Equal(t, interfaces.SSAInHouse, p.SSAStrategy)
	assert.Equal(t, interfaces.MarketConsumer, p.TargetMarket)
	assert.Equal(t, interfaces.LicensingPrivate, p.DataLicensing)
}

func TestNormalize_UnknownPassesThrough(t *testing.T) {
	p := Normalize(interfaces.MissionParameters{DeorbitMethod: "Tether", LaunchVehicleType: "Balloon"})
	assert.Equal(t, interfaces.DeorbitMethod("Tether"), p.DeorbitMethod)
	assert.Equal(t, interfaces.LaunchVehicle("Balloon"), p.LaunchVehicleType)
}

func TestParse_MergesOverrides(t *testing.T) {
	data := []byte(`
businessCategories:
  AsteroidMining:
    name: Asteroid Mining
    marketSize: 60000000000
vendors:
  - vendor: Acme
    stages:
      - stage: Launch
        costUSD: 1000000
scoringWeights:
  financial: 0.4
  debris: 0.2
  regulatory: 0.2
  technical: 0.2
`)
	c, err := Parse(data)
	require.NoError(t, err)

	cat, ok := c.Category("AsteroidMining")
	require.True(t, ok)
	assert.Equal(t, 60_000_000_000.0, cat.MarketSize)
	_, ok = c.Category("SatCom")
	assert.True(t, ok, "defaults kept alongside overrides")

	require.Len(t, c.Vendors, 1)
	assert.Equal(t, interfaces.Vendor("Acme"), c.Vendors[0].Vendor)
	assert.Equal(t, 0.4, c.Weights.Financial)
	assert.Len(t, c.OrbitBands, 4)
}

func TestParse_RejectsBadWeights(t *testing.T) {
	_, err := Parse([]byte("scoringWeights:\n  financial: 0.9\n  debris: 0.9\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestParse_RejectsUnknownStage(t *testing.T) {
	_, err := Parse([]byte("vendors:\n  - vendor: Acme\n    stages:\n      - stage: Lunch\n        costUSD: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("targetMarkets:\n  Government:\n    contractStability: 50\n    paymentReliability: 50\n    regulatoryComplexity: 2\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Market(interfaces.MarketGovernment).RegulatoryComplexity)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestHints(t *testing.T) {
	hints := Hints(interfaces.MissionParameters{
		TargetRevenue:     25_000_000,
		ConstellationSize: 24,
		TargetAltitude:    550,
		PayloadMass:       0,
		LeadTimeTolerance: 36,
		MissionLifespan:   5,
		LaunchVehicleType: "Reusable",
	})

	byField := make(map[string]string, len(hints))
	for _, h := range hints {
		byField[h.Field] = h.Label
	}

	assert.Equal(t, "Moderate scale, proven market", byField["targetRevenue"])
	assert.Equal(t, "Regional coverage, moderate cost", byField["constellationSize"])
	assert.Equal(t, "Sweet spot, good coverage vs. lifespan", byField["targetAltitude"])
	assert.Equal(t, "Set total payload mass", byField["payloadMass"])
	assert.Equal(t, "Very flexible, maximum cost efficiency", byField["leadTimeTolerance"])
	assert.Equal(t, "Extended commercial operation", byField["missionLifespan"])
	assert.Equal(t, "Medium launch vehicles (500kg-10t)", byField["launchVehicleType"])
	assert.Equal(t, "Set product value per kg", byField["productValueDensity"])
}
