package ai

import (
	"context"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// SourceLocal marks reports produced by LocalGenerator.
const SourceLocal = "local"

// Success probability bounds for the templated report.
const (
	MinLocalSuccess = 40
	MaxLocalSuccess = 85
)

// LocalGenerator builds a deterministic templated report without any network
// access. It never fails.
type LocalGenerator struct{}

// NewLocalGenerator creates a local report generator.
func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{}
}

// Generate implements interfaces.ReportGenerator.
func (g *LocalGenerator) Generate(_ context.Context, params *interfaces.MissionParameters, scores *interfaces.ScoreResult) (*interfaces.MissionReport, error) {
	return g.Build(params, scores), nil
}

// Build returns the templated report. Nil arguments are treated as zero values.
func (g *LocalGenerator) Build(params *interfaces.MissionParameters, scores *interfaces.ScoreResult) *interfaces.MissionReport {
	var p interfaces.MissionParameters
	if params != nil {
		p = *params
	}
	var s interfaces.ScoreResult
	if scores != nil {
		s = *scores
	}

	return &interfaces.MissionReport{
		Summary:             localSummary(p, s),
		Recommendations:     localRecommendations(p),
		EnvironmentalImpact: localEnvironment(p, s),
		RegulatoryNotes:     localRegulatory(),
		FinancialAnalysis:   localFinancial(p),
		TechnicalInsights:   localTechnical(p, s),
		Source:              SourceLocal,
	}
}

// SuccessProbability is the templated estimate: overall - 10, plus 10 when
// financially viable, bounded to [40,85].
func SuccessProbability(s interfaces.ScoreResult) int {
	v := s.Overall - 10
	if financiallyViable(s) {
		v += 10
	}
	return max(MinLocalSuccess, min(MaxLocalSuccess, v))
}

func financiallyViable(s interfaces.ScoreResult) bool { return s.Financial > 60 }

func highDebrisRisk(s interfaces.ScoreResult) bool { return s.Debris > 70 }

// viability prefers the engine's rating and derives one from the overall
// score when the caller supplied none.
func viability(s interfaces.ScoreResult) interfaces.Rating {
	switch {
	case s.Rating != "":
		return s.Rating
	case s.Overall > 70:
		return interfaces.RatingExcellent
	case s.Overall > 50:
		return interfaces.RatingGood
	default:
		return interfaces.RatingChallenging
	}
}

func launchSite(p interfaces.MissionParameters) string {
	if p.LaunchSite == "" {
		return "selected"
	}
	return p.LaunchSite
}

func localSummary(p interfaces.MissionParameters, s interfaces.ScoreResult) string {
	potential := "moderate"
	if financiallyViable(s) {
		potential = "strong"
	}
	safety := "standard orbital safety protocols"
	if highDebrisRisk(s) {
		safety = "significant debris risk management"
	}
	return fmt.Sprintf("Your %s mission targeting %gkm altitude shows %s commercial potential with projected annual revenue of $%s. "+
		"The mission design demonstrates %s overall viability. "+
		"Key considerations include %s and comprehensive regulatory compliance. "+
		"The %s launch site provides suitable access to your target orbit, though %g-year mission duration requires robust satellite design and %s end-of-life planning.",
		p.BusinessCategory, p.TargetAltitude, potential, humanize.Commaf(p.TargetRevenue),
		viability(s), safety, launchSite(p), p.MissionLifespan, p.DeorbitMethod)
}

func localRecommendations(p interfaces.MissionParameters) interfaces.Recommendations {
	return interfaces.Recommendations{
		Mandatory: []string{
			"Obtain FCC authorization for spectrum use and orbital debris mitigation plan approval",
			fmt.Sprintf("Implement %s system with 95%% reliability for end-of-mission disposal", p.DeorbitMethod),
			"Secure comprehensive space insurance covering launch and on-orbit operations",
			fmt.Sprintf("Design constellation for %g-year operational life with component redundancy", p.MissionLifespan),
			fmt.Sprintf("Establish %s space situational awareness monitoring system", p.SSAStrategy),
		},
		Recommended: []string{
			"Partner with established satellite manufacturer to reduce development risk",
			"Implement AI-powered predictive maintenance for satellite health monitoring",
			"Establish ground station network partnerships for global coverage",
			"Develop modular satellite design for easy component replacement and upgrades",
			"Create partnership agreements with debris removal services",
		},
		Baseline: []string{
			"Consider phased deployment to validate business model before full constellation",
			"Evaluate alternative launch providers for cost optimization",
			"Implement blockchain-based data licensing and revenue tracking",
			"Develop automated collision avoidance maneuver capabilities",
			"Plan for next-generation constellation with improved capabilities",
		},
	}
}

func localEnvironment(p interfaces.MissionParameters, s interfaces.ScoreResult) interfaces.EnvironmentalImpact {
	risk := "moderate"
	if highDebrisRisk(s) {
		risk = "elevated"
	}
	tracked := int(math.Floor(p.TargetAltitude / 100 * 500))
	probability := 0.001 * math.Pow(p.TargetAltitude/500, 2) * float64(p.ConstellationSize)

	return interfaces.EnvironmentalImpact{
		DebrisRiskAssessment: fmt.Sprintf("At %gkm altitude, your mission faces %s debris risk with approximately %d tracked objects in similar orbits. "+
			"Critical fragments from previous satellite collisions pose ongoing threats, particularly in the 750-850km range. "+
			"Your %d-satellite constellation will contribute to orbital congestion but can be managed through proper spacing and active debris monitoring.",
			p.TargetAltitude, risk, tracked, p.ConstellationSize),
		OrbitalSustainability: fmt.Sprintf("The mission's %g-year operational period with %s disposal aligns with international sustainability guidelines. "+
			"However, constellation density requires careful orbital slot coordination to prevent interference with existing operators. "+
			"Your business model supports sustainable space commerce through %s data sharing practices.",
			p.MissionLifespan, p.DeorbitMethod, p.DataLicensing),
		CollisionProbability: fmt.Sprintf("Annual collision probability estimated at %.4f%% per satellite based on current debris models. "+
			"Risk peaks during solar maximum periods when atmospheric drag decreases and debris population increases at operational altitudes.",
			probability),
		MitigationStrategies: []string{
			"Implement automated conjunction assessment and collision avoidance maneuvers",
			"Design satellites with propulsion systems for active debris avoidance",
			"Use radar-absorbing materials to reduce space surveillance sensitivity",
			"Plan controlled deorbit within 25 years or less as per international guidelines",
			"Participate in Space Data Association for enhanced space situational awareness",
			"Implement satellite hardening against small debris impacts",
		},
	}
}

func localRegulatory() interfaces.RegulatoryNotes {
	return interfaces.RegulatoryNotes{
		LicensingRequirements: []string{
			"FCC Part 25 satellite license for communications frequencies",
			"NOAA remote sensing license for Earth observation capabilities",
			"ITU coordination for international frequency coordination",
			"FAA launch authorization for each mission",
			"Export control license (ITAR/EAR) for technology transfer",
			"Environmental impact assessment for launch operations",
		},
		ComplianceChecklist: []string{
			"Submit orbital debris mitigation plan to FCC within 6 months of license application",
			"Coordinate with USSTRATCOM for space object cataloging and tracking",
			"Establish 24/7 mission control with collision avoidance procedures",
			"Implement encryption and cybersecurity measures per NIST guidelines",
			"Maintain satellite tracking and control throughout mission life",
			"File annual compliance reports with all relevant agencies",
			"Ensure end-of-mission disposal compliance within regulatory timeframes",
		},
		InternationalConsiderations: []string{
			"Coordinate with international partners through ITU Radio Regulations",
			"Comply with UN Outer Space Treaty and Liability Convention obligations",
			"Consider European GDPR requirements for Earth observation data",
			"Align with emerging UN Long-term Sustainability Guidelines",
			"Evaluate export control implications for international customers",
		},
	}
}

func localFinancial(p interfaces.MissionParameters) interfaces.FinancialAnalysis {
	size := float64(p.ConstellationSize)
	return interfaces.FinancialAnalysis{
		CostBreakdown: fmt.Sprintf("Total mission cost estimated at $%s over %g years: Launch costs ($%s), satellite development ($%s), ground systems ($%s), "+
			"operations ($%s/year), and regulatory compliance ($%s/year). Insurance costs approximately 10-15%% of total asset value annually.",
			humanize.Commaf(p.TargetRevenue*0.8), p.MissionLifespan,
			humanize.Commaf(size*15_000_000), humanize.Commaf(size*8_000_000), humanize.Commaf(size*2_000_000),
			humanize.Commaf(p.MissionLifespan*5_000_000), humanize.Commaf(p.MissionLifespan*1_000_000)),
		RiskFactors: []string{
			"Launch failure risk affecting constellation deployment timeline and insurance costs",
			"Regulatory delays potentially extending development schedule by 6-18 months",
			"Market competition from established players and new entrants",
			"Technology obsolescence during multi-year satellite operational life",
			"Currency fluctuation affecting international launch and component costs",
			"Space weather events potentially reducing satellite operational life",
		},
		MarketOpportunities: []string{
			fmt.Sprintf("%s market growing at 8-12%% annually with increasing demand", p.BusinessCategory),
			"Government contracts providing stable revenue base and growth opportunities",
			"International expansion potential in underserved markets",
			"Value-added services and data analytics creating additional revenue streams",
			"Partnership opportunities with other space companies for shared infrastructure",
		},
		ROIProjection: fmt.Sprintf("Break-even expected in year %d with positive cash flow thereafter. "+
			"Target internal rate of return of 18-25%% based on conservative revenue projections. "+
			"Market expansion and technology improvements could accelerate returns by 12-18 months.",
			int(math.Ceil(p.MissionLifespan*0.4))),
	}
}

func localTechnical(p interfaces.MissionParameters, s interfaces.ScoreResult) interfaces.TechnicalInsights {
	drag := "moderate"
	if p.TargetAltitude < 600 {
		drag = "significant"
	}
	routine := math.Max(0, p.MissionLifespan-2)
	completion := 36 + float64(p.ConstellationSize)/2

	return interfaces.TechnicalInsights{
		LaunchWindowOptimization: fmt.Sprintf("Optimal launch windows occur every %d days for your target %gkm orbit. "+
			"Consider sun-synchronous orbit for Earth observation missions or specific inclination for communication coverage. "+
			"Seasonal variations affect atmospheric drag and debris density, with spring launches generally preferred for debris avoidance.",
			int(math.Ceil(365.0/12)), p.TargetAltitude),
		OrbitalMechanics: fmt.Sprintf("At %gkm altitude, orbital period is approximately %.0f minutes with orbital velocity of %.1f km/s. "+
			"Station-keeping requirements include atmospheric drag compensation (%s), solar radiation pressure effects, and gravitational perturbations. "+
			"Annual delta-V budget estimated at %.0f m/s.",
			p.TargetAltitude, 90+p.TargetAltitude/20, 7.8-p.TargetAltitude/1000, drag, 50+p.TargetAltitude/20),
		MissionTimeline: fmt.Sprintf("Development phase: 24-36 months; Launch campaign: 3-6 months; Initial operations: 6 months; "+
			"Full operational capability: 12 months; Routine operations: %g years; End-of-life disposal: 6 months. "+
			"Critical milestones include regulatory approval (month 18), first satellite delivery (month 30), and constellation completion (month %g).",
			routine, completion),
		SuccessProbability: SuccessProbability(s),
	}
}
