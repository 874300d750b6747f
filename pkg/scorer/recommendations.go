package scorer

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// Recommendation trigger thresholds, all strict less-than against the
// rounded sub-scores.
const (
	MandatoryDebrisBelow     = 50
	MandatoryRegulatoryBelow = 60
	MandatoryFinancialBelow  = 40

	RecommendedTechnicalBelow = 70
	RecommendedFinancialBelow = 70
	RecommendedDebrisBelow    = 80
)

// Recommendation text per trigger.
var (
	DebrisMitigationItems = []string{
		"Implement active debris mitigation strategy",
		"Upgrade space situational awareness capabilities",
	}
	ComplianceItems = []string{
		"Ensure full regulatory compliance before launch",
		"Establish clear data licensing framework",
	}
	BusinessModelItems = []string{
		"Reassess business model viability",
		"Consider alternative revenue streams",
	}
	TechnicalItems = []string{
		"Consider constellation size optimization",
		"Evaluate launch vehicle alternatives",
	}
	CostItems = []string{
		"Explore cost reduction opportunities",
		"Consider strategic partnerships",
	}
	DeorbitItems = []string{
		"Implement enhanced deorbit capabilities",
		"Consider commercial SSA services",
	}
)

// BaselineRecommendations returns the best-practice items every mission gets.
func BaselineRecommendations() []string {
	return []string{
		"Maintain regular stakeholder communication",
		"Implement comprehensive testing protocols",
		"Establish emergency response procedures",
		"Monitor industry regulatory developments",
		"Plan for end-of-mission disposal",
	}
}

// Recommend evaluates the trigger rules against s, reading debris as risk.
func Recommend(s *interfaces.ScoreResult) interfaces.Recommendations {
	return RecommendWith(s, GaugeRisk)
}

// RecommendWith evaluates the trigger rules, comparing the debris thresholds
// against the value gauge selects. Mandatory and Recommended are never nil
// so they encode as empty lists.
func RecommendWith(s *interfaces.ScoreResult, gauge DebrisGauge) interfaces.Recommendations {
	debris := gauge.value(s)
	recs := interfaces.Recommendations{
		Mandatory:   []string{},
		Recommended: []string{},
		Baseline:    BaselineRecommendations(),
	}

	if debris < MandatoryDebrisBelow {
		recs.Mandatory = append(recs.Mandatory, DebrisMitigationItems...)
	}
	if s.Regulatory < MandatoryRegulatoryBelow {
		recs.Mandatory = append(recs.Mandatory, ComplianceItems...)
	}
	if s.Financial < MandatoryFinancialBelow {
		recs.Mandatory = append(recs.Mandatory, BusinessModelItems...)
	}

	if s.Technical < RecommendedTechnicalBelow {
		recs.Recommended = append(recs.Recommended, TechnicalItems...)
	}
	if s.Financial < RecommendedFinancialBelow {
		recs.Recommended = append(recs.Recommended, CostItems...)
	}
	if debris < RecommendedDebrisBelow {
		recs.Recommended = append(recs.Recommended, DeorbitItems...)
	}
	return recs
}
