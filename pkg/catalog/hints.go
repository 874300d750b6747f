package catalog

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// Hint is a short contextual label for one mission parameter, as shown next
// to the corresponding wizard input.
type Hint struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// band is an inclusive upper bound and its label.
type band struct {
	max   float64
	label string
}

var (
	revenueBands = []band{
		{1_000_000, "Low risk, pilot project"},
		{25_000_000, "Moderate scale, proven market"},
		{100_000_000, "High ambition, major investment"},
	}
	revenueTop = "Industry leader scale, extreme capital"

	constellationBands = []band{
		{6, "Small coverage, lower cost"},
		{24, "Regional coverage, moderate cost"},
		{100, "Global coverage, high cost"},
	}
	constellationTop = "Mega constellation, massive complexity"

	altitudeBands = []band{
		{400, "Low orbit, high drag, short lifespan"},
		{600, "Sweet spot, good coverage vs. lifespan"},
		{1000, "Higher orbit, longer lifespan, less coverage"},
	}
	altitudeTop = "Very high orbit, radiation concerns"

	densityBands = []band{
		{100, "Low value cargo, cost sensitive"},
		{1000, "Moderate value, standard pricing"},
		{10000, "High value, premium pricing"},
	}
	densityTop = "Ultra-premium, cost no object"

	payloadBands = []band{
		{200, "Small satellite class, rideshare friendly"},
		{500, "Medium payload, dedicated small launcher"},
		{1500, "Large payload, medium launcher required"},
	}
	payloadTop = "Heavy payload, premium launch vehicle"

	leadTimeBands = []band{
		{12, "Rush launch, premium pricing"},
		{24, "Standard timeline, competitive rates"},
		{30, "Flexible timing, cost savings"},
	}
	leadTimeTop = "Very flexible, maximum cost efficiency"

	lifespanBands = []band{
		{1, "Technology demonstration"},
		{3, "Standard commercial mission"},
		{5, "Extended commercial operation"},
		{7, "Long-term infrastructure"},
	}
	lifespanTop = "Decade+ strategic asset"

	vehicleLabels = map[interfaces.LaunchVehicle]string{
		interfaces.VehicleSmall:     "Small launch vehicles (up to 500kg)",
		interfaces.VehicleMedium:    "Medium launch vehicles (500kg-10t)",
		interfaces.VehicleHeavy:     "Heavy launch vehicles (10t+)",
		interfaces.VehicleRideshare: "Rideshare opportunities",
	}
)

// Hints labels each numeric wizard input. Zero values are reported as unset.
func Hints(p interfaces.MissionParameters) []Hint {
	hints := []Hint{
		{Field: "targetRevenue", Label: classify(p.TargetRevenue, revenueBands, revenueTop, "Select target revenue")},
		{Field: "productValueDensity", Label: classify(p.ProductValueDensity, densityBands, densityTop, "Set product value per kg")},
		{Field: "constellationSize", Label: classify(float64(p.ConstellationSize), constellationBands, constellationTop, "Choose constellation size")},
		{Field: "targetAltitude", Label: classify(p.TargetAltitude, altitudeBands, altitudeTop, "Set orbital altitude")},
		{Field: "payloadMass", Label: classify(p.PayloadMass, payloadBands, payloadTop, "Set total payload mass")},
		{Field: "leadTimeTolerance", Label: classify(p.LeadTimeTolerance, leadTimeBands, leadTimeTop, "Set lead time flexibility")},
		{Field: "missionLifespan", Label: classify(p.MissionLifespan, lifespanBands, lifespanTop, "Set mission duration")},
	}

	vehicle := "Select launch vehicle class"
	if label, ok := vehicleLabels[Normalize(p).LaunchVehicleType]; ok {
		vehicle = label
	}
	hints = append(hints, Hint{Field: "launchVehicleType", Label: vehicle})
	return hints
}

func classify(v float64, bands []band, top, unset string) string {
	if v == 0 {
		return unset
	}
	for _, b := range bands {
		if v <= b.max {
			return b.label
		}
	}
	return top
}
