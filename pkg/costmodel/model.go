// Package costmodel re-weights a static vendor/stage cost table according to
// mission parameters and derives a vendor ranking and budget insights.
package costmodel

import (
	"math"
	"sort"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// Multiplier clamp ranges.
const (
	MassDivisor     = 500.0
	MassMin         = 0.5
	MassMax         = 2.0
	UrgencyHorizon  = 36.0
	UrgencyDivisor  = 24.0
	UrgencyMin      = 0.8
	UrgencyMax      = 1.5
	AltitudeDivisor = 800.0
	AltitudeMin     = 0.9
	AltitudeMax     = 1.3
	ScaleDivisor    = 50.0
	ScaleMin        = 0.7
	ScaleMax        = 1.4
	LifespanDivisor = 5.0
)

// Vendor/stage adjustment factors.
const (
	HeavyPayloadKg          = 1000
	RocketLabHeavyFactor    = 1.8
	UrgentThreshold         = 1.2
	GovernmentUrgentFactor  = 0.9
	FlexibleLeadMonths      = 24
	FlexibleLaunchFactor    = 0.85
	BulkConstellationSize   = 50
	BulkManufacturingFactor = 0.92
	SmallSatPayloadKg       = 100
	SmallSatFactor          = 0.8
	ISRORevenueCeiling      = 10_000_000
	ISROOperationsFactor    = 0.85
	LongMissionYears        = 7
	LongMissionFactor       = 1.1
)

// Model computes cost analyses against one vendor table.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	vendors []interfaces.VendorCostProfile
}

// Option configures the Model.
type Option func(*Model)

// WithVendors replaces the default vendor table. The table is copied.
func WithVendors(v []interfaces.VendorCostProfile) Option {
	return func(m *Model) {
		m.vendors = catalog.CloneVendors(v)
	}
}

// New creates a cost model with optional configuration.
func New(opts ...Option) *Model {
	m := &Model{vendors: catalog.DefaultVendors()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Analyze computes the full vendor comparison. It never fails: missing
// inputs take their defaults and an empty vendor table yields an empty
// ranking with zeroed insights.
func (m *Model) Analyze(in Input) *interfaces.CostAnalysis {
	r := in.resolve()

	mult := multipliers(r)
	weights := stageWeights(mult, r)
	adjusted := m.adjust(r, mult)
	totals := rank(adjusted, weights)

	return &interfaces.CostAnalysis{
		Multipliers:   mult,
		Weights:       weights,
		AdjustedCosts: adjusted,
		TotalByVendor: totals,
		BestByStage:   bestByStage(adjusted),
		Insights:      insights(r, totals),
	}
}

func multipliers(r resolved) interfaces.CostMultipliers {
	return interfaces.CostMultipliers{
		Mass:     bound(r.payloadMass/MassDivisor, MassMin, MassMax),
		Urgency:  bound((UrgencyHorizon-r.leadTimeTolerance)/UrgencyDivisor, UrgencyMin, UrgencyMax),
		Altitude: bound(r.targetAltitude/AltitudeDivisor, AltitudeMin, AltitudeMax),
		Scale:    bound(r.constellationSize/ScaleDivisor, ScaleMin, ScaleMax),
	}
}

func stageWeights(m interfaces.CostMultipliers, r resolved) interfaces.StageWeights {
	return interfaces.StageWeights{
		interfaces.StageManufacturing: m.Mass * m.Scale,
		interfaces.StageLaunch:        m.Mass * m.Urgency * m.Altitude,
		interfaces.StageGroundSegment: m.Scale,
		interfaces.StageOperations:    finite(r.missionLifespan / LifespanDivisor * m.Scale),
	}
}

// adjust applies the vendor/stage factors and rounds each stage cost to
// whole dollars.
func (m *Model) adjust(r resolved, mult interfaces.CostMultipliers) []interfaces.VendorCostProfile {
	out := catalog.CloneVendors(m.vendors)
	for i := range out {
		vendor := out[i].Vendor
		for j := range out[i].Stages {
			s := &out[i].Stages[j]
			cost := float64(s.CostUSD)
			switch s.Stage {
			case interfaces.StageLaunch:
				if r.payloadMass > HeavyPayloadKg && vendor == interfaces.VendorRocketLab {
					cost *= RocketLabHeavyFactor
				}
				if mult.Urgency > UrgentThreshold && (vendor == interfaces.VendorNASA || vendor == interfaces.VendorULA) {
					cost *= GovernmentUrgentFactor
				}
				if r.leadTimeTolerance > FlexibleLeadMonths {
					cost *= FlexibleLaunchFactor
				}
			case interfaces.StageManufacturing:
				if r.constellationSize > BulkConstellationSize {
					cost *= BulkManufacturingFactor
				}
				if r.payloadMass < SmallSatPayloadKg {
					cost *= SmallSatFactor
				}
			case interfaces.StageOperations:
				if r.rawRevenue < ISRORevenueCeiling && vendor == interfaces.VendorISRO {
					cost *= ISROOperationsFactor
				}
				if r.missionLifespan > LongMissionYears {
					cost *= LongMissionFactor
				}
			}
			s.CostUSD = roundHalfUp(cost)
		}
	}
	return out
}

// rank computes weighted totals, ascending, ties broken by vendor name.
func rank(adjusted []interfaces.VendorCostProfile, weights interfaces.StageWeights) []interfaces.VendorTotal {
	totals := make([]interfaces.VendorTotal, 0, len(adjusted))
	for _, v := range adjusted {
		t := interfaces.VendorTotal{
			Vendor:    v.Vendor,
			Breakdown: make(map[interfaces.Stage]float64, len(v.Stages)),
		}
		for _, s := range v.Stages {
			contribution := finite(float64(s.CostUSD) * weights[s.Stage])
			t.Breakdown[s.Stage] = contribution
			t.Total = finite(t.Total + contribution)
		}
		totals = append(totals, t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total < totals[j].Total
		}
		return totals[i].Vendor < totals[j].Vendor
	})
	return totals
}

// bestByStage picks the cheapest unweighted adjusted cost per stage, ties
// broken by vendor name. Stages no vendor offers are absent.
func bestByStage(adjusted []interfaces.VendorCostProfile) map[interfaces.Stage]interfaces.StageBest {
	best := make(map[interfaces.Stage]interfaces.StageBest, len(interfaces.Stages))
	for _, v := range adjusted {
		for _, s := range v.Stages {
			cur, ok := best[s.Stage]
			if !ok || s.CostUSD < cur.CostUSD || (s.CostUSD == cur.CostUSD && v.Vendor < cur.Vendor) {
				best[s.Stage] = interfaces.StageBest{Vendor: v.Vendor, CostUSD: s.CostUSD}
			}
		}
	}
	return best
}

func bound(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// finite saturates overflowed values at ±math.MaxFloat64 and maps NaN to 0,
// so every figure in an analysis survives JSON encoding.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
