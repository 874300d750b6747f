package catalog

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// DefaultVendors returns the static vendor base-cost table (whole USD per stage).
func DefaultVendors() []interfaces.VendorCostProfile {
	return []interfaces.VendorCostProfile{
		vendor(interfaces.VendorSpaceX, 18_000_000, 55_000_000, 4_000_000, 6_000_000),
		vendor(interfaces.VendorULA, 28_000_000, 110_000_000, 7_000_000, 9_000_000),
		vendor(interfaces.VendorRocketLab, 12_000_000, 7_500_000, 3_000_000, 4_500_000),
		vendor(interfaces.VendorArianespace, 25_000_000, 90_000_000, 6_000_000, 8_000_000),
		vendor(interfaces.VendorISRO, 10_000_000, 32_000_000, 2_500_000, 4_000_000),
		vendor(interfaces.VendorNASA, 30_000_000, 130_000_000, 8_000_000, 12_000_000),
	}
}

func vendor(v interfaces.Vendor, manufacturing, launch, ground, operations int64) interfaces.VendorCostProfile {
	return interfaces.VendorCostProfile{
		Vendor: v,
		Stages: []interfaces.StageCost{
			{Stage: interfaces.StageManufacturing, CostUSD: manufacturing},
			{Stage: interfaces.StageLaunch, CostUSD: launch},
			{Stage: interfaces.StageGroundSegment, CostUSD: ground},
			{Stage: interfaces.StageOperations, CostUSD: operations},
		},
	}
}

// CloneVendors deep-copies a vendor table.
func CloneVendors(in []interfaces.VendorCostProfile) []interfaces.VendorCostProfile {
	out := make([]interfaces.VendorCostProfile, len(in))
	for i, v := range in {
		out[i] = interfaces.VendorCostProfile{
			Vendor: v.Vendor,
			Stages: append([]interfaces.StageCost(nil), v.Stages...),
		}
	}
	return out
}
