package costmodel

import (
	"github.com/montanaflynn/stats"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// BudgetShare is the fraction of annual revenue assumed available for mission costs.
const BudgetShare = 0.4

// Budget-fit boundaries, strict greater-than.
const (
	ComfortableRatio = 1.2
	TightRatio       = 0.8
)

// Risk-factor triggers.
const (
	HeavyPayloadRiskKg      = 1500
	TightTimelineMonths     = 12
	LargeConstellationCount = 100
	HighAltitudeRiskKm      = 1200
)

// Risk-factor text.
const (
	RiskHeavyPayload       = "Heavy payload increases launch complexity"
	RiskTightTimeline      = "Tight timeline may limit vendor options"
	RiskLargeConstellation = "Large constellation requires proven mass production"
	RiskHighAltitude       = "High altitude increases radiation and debris risk"
)

// ClassifyBudget maps a budget ratio onto a fit category.
func ClassifyBudget(ratio float64) interfaces.BudgetFit {
	switch {
	case ratio > ComfortableRatio:
		return interfaces.BudgetComfortable
	case ratio > TightRatio:
		return interfaces.BudgetTight
	default:
		return interfaces.BudgetChallenging
	}
}

// insights derives the budget fit and risk list. totals must be ranked.
func insights(r resolved, totals []interfaces.VendorTotal) interfaces.CostInsights {
	values := make([]float64, len(totals))
	for i, t := range totals {
		values[i] = t.Total
	}

	// Both fail only on empty input, returning NaN.
	avg, err := stats.Mean(values)
	if err != nil {
		avg = 0
	}
	spread, err := stats.StandardDeviation(values)
	if err != nil {
		spread = 0
	}

	ins := interfaces.CostInsights{
		TotalBudget: finite(r.targetRevenue * BudgetShare),
		AverageCost: finite(avg),
		CostSpread:  finite(spread),
		RiskFactors: riskFactors(r),
	}
	if ins.AverageCost > 0 {
		ins.BudgetRatio = finite(ins.TotalBudget / ins.AverageCost)
	}
	ins.BudgetFit = ClassifyBudget(ins.BudgetRatio)

	if len(totals) > 0 {
		ins.BestVendor = totals[0]
		ins.WorstVendor = totals[len(totals)-1]
		ins.Savings = finite(ins.WorstVendor.Total - ins.BestVendor.Total)
	}
	return ins
}

func riskFactors(r resolved) []string {
	risks := []string{}
	if r.payloadMass > HeavyPayloadRiskKg {
		risks = append(risks, RiskHeavyPayload)
	}
	if r.leadTimeTolerance < TightTimelineMonths {
		risks = append(risks, RiskTightTimeline)
	}
	if r.constellationSize > LargeConstellationCount {
		risks = append(risks, RiskLargeConstellation)
	}
	if r.targetAltitude > HighAltitudeRiskKm {
		risks = append(risks, RiskHighAltitude)
	}
	return risks
}
