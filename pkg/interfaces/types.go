// Package interfaces defines the shared types and contracts for all leoplan modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import "time"

// TargetMarket is the customer segment a mission sells into.
type TargetMarket string

const (
	MarketGovernment TargetMarket = "Government"
	MarketEnterprise TargetMarket = "Enterprise"
	MarketConsumer   TargetMarket = "Consumer"
)

// LaunchVehicle is the launch vehicle class requested by the mission.
type LaunchVehicle string

const (
	VehicleSmall     LaunchVehicle = "Small"
	VehicleMedium    LaunchVehicle = "Medium"
	VehicleHeavy     LaunchVehicle = "Heavy"
	VehicleRideshare LaunchVehicle = "Rideshare"
)

// DeorbitMethod is the end-of-life disposal strategy.
type DeorbitMethod string

const (
	DeorbitActivePropulsion DeorbitMethod = "Active Propulsion"
	DeorbitDragEnhancement  DeorbitMethod = "Drag Enhancement"
	DeorbitRemovalService   DeorbitMethod = "Debris Removal Service"
)

// SSAStrategy is the space situational awareness approach.
type SSAStrategy string

const (
	SSACommercial SSAStrategy = "Commercial"
	SSAInHouse    SSAStrategy = "In-house"
	SSAPublicData SSAStrategy = "Public Data"
)

// DataLicensing is the data licensing model.
type DataLicensing string

const (
	LicensingOpen       DataLicensing = "Open"
	LicensingRestricted DataLicensing = "Restricted"
	LicensingPrivate    DataLicensing = "Private"
)

// MissionParameters is the record collected by the three-phase planning wizard.
// Values are caller-supplied and never validated here; engines degrade gracefully.
type MissionParameters struct {
	// Opportunity definition
	BusinessCategory    string       `json:"businessCategory" yaml:"businessCategory"`
	TargetRevenue       float64      `json:"targetRevenue" yaml:"targetRevenue"`             // USD per year
	ProductValueDensity float64      `json:"productValueDensity" yaml:"productValueDensity"` // USD per kg
	TargetMarket        TargetMarket `json:"targetMarket" yaml:"targetMarket"`

	// Operational and technical parameters
	ConstellationSize int           `json:"constellationSize" yaml:"constellationSize"`
	TargetAltitude    float64       `json:"targetAltitude" yaml:"targetAltitude"`   // km
	MissionLifespan   float64       `json:"missionLifespan" yaml:"missionLifespan"` // years
	LaunchVehicleType LaunchVehicle `json:"launchVehicleType" yaml:"launchVehicleType"`
	InSpacePropulsion bool          `json:"inSpacePropulsion" yaml:"inSpacePropulsion"`
	PayloadMass       float64       `json:"payloadMass" yaml:"payloadMass"`             // kg
	LeadTimeTolerance float64       `json:"leadTimeTolerance" yaml:"leadTimeTolerance"` // months
	LaunchSite        string        `json:"selectedLaunchSite,omitempty" yaml:"selectedLaunchSite,omitempty"`

	// Risk and sustainability commitments
	DeorbitMethod DeorbitMethod `json:"deorbitMethod" yaml:"deorbitMethod"`
	SSAStrategy   SSAStrategy   `json:"ssaStrategy" yaml:"ssaStrategy"`
	DataLicensing DataLicensing `json:"dataLicensing" yaml:"dataLicensing"`
}

// Rating is the headline viability rating derived from the overall score.
type Rating string

const (
	RatingExcellent   Rating = "excellent"
	RatingGood        Rating = "good"
	RatingChallenging Rating = "challenging"
)

// Recommendations are partitioned into fixed-severity buckets.
type Recommendations struct {
	Mandatory   []string `json:"mandatory" yaml:"mandatory"`
	Recommended []string `json:"recommended" yaml:"recommended"`
	Baseline    []string `json:"baseline" yaml:"baseline"`
}

// ScoreResult is the dashboard's headline numbers. All scores are in [0,100].
type ScoreResult struct {
	Overall    int `json:"overall"`
	Financial  int `json:"financial"`
	Debris     int `json:"debris"` // risk: higher is worse
	Regulatory int `json:"regulatory"`
	Technical  int `json:"technical"`
	Safety     int `json:"safety"` // 100 - debris, for display

	Rating          Rating          `json:"rating"`
	Policy          string          `json:"policy"`
	Recommendations Recommendations `json:"recommendations"`
}

// Stage is a mission cost stage.
type Stage string

const (
	StageManufacturing Stage = "Manufacturing"
	StageLaunch        Stage = "Launch"
	StageGroundSegment Stage = "Ground Segment"
	StageOperations    Stage = "Operations"
)

// Stages lists every cost stage in presentation order.
var Stages = []Stage{StageManufacturing, StageLaunch, StageGroundSegment, StageOperations}

// Vendor identifies a launch / mission services provider.
type Vendor string

const (
	VendorSpaceX      Vendor = "SpaceX"
	VendorULA         Vendor = "ULA"
	VendorRocketLab   Vendor = "RocketLab"
	VendorArianespace Vendor = "Arianespace"
	VendorISRO        Vendor = "ISRO"
	VendorNASA        Vendor = "NASA"
)

// StageCost is one vendor's cost for one stage, in whole USD.
type StageCost struct {
	Stage   Stage `json:"stage" yaml:"stage"`
	CostUSD int64 `json:"costUSD" yaml:"costUSD"`
}

// VendorCostProfile is a vendor's per-stage cost table.
type VendorCostProfile struct {
	Vendor Vendor      `json:"vendor" yaml:"vendor"`
	Stages []StageCost `json:"stages" yaml:"stages"`
}

// StageWeights maps each stage to its mission-derived weight.
type StageWeights map[Stage]float64

// CostMultipliers are the clamped intermediate factors behind the stage weights.
type CostMultipliers struct {
	Mass     float64 `json:"mass"`
	Urgency  float64 `json:"urgency"`
	Altitude float64 `json:"altitude"`
	Scale    float64 `json:"scale"`
}

// VendorTotal is a vendor's weighted total and its per-stage contribution.
type VendorTotal struct {
	Vendor    Vendor            `json:"vendor"`
	Total     float64           `json:"total"`
	Breakdown map[Stage]float64 `json:"breakdown"`
}

// StageBest is the cheapest vendor for a single stage.
type StageBest struct {
	Vendor  Vendor `json:"vendor"`
	CostUSD int64  `json:"cost"`
}

// BudgetFit classifies how the mission budget compares with the average vendor cost.
type BudgetFit string

const (
	BudgetComfortable BudgetFit = "comfortable"
	BudgetTight       BudgetFit = "tight"
	BudgetChallenging BudgetFit = "challenging"
)

// CostInsights are the derived budget and risk observations.
type CostInsights struct {
	BudgetFit   BudgetFit   `json:"budgetFit"`
	BudgetRatio float64     `json:"budgetRatio"`
	TotalBudget float64     `json:"totalBudget"`
	AverageCost float64     `json:"averageCost"`
	CostSpread  float64     `json:"costSpread"`
	RiskFactors []string    `json:"riskFactors"`
	BestVendor  VendorTotal `json:"bestVendor"`
	WorstVendor VendorTotal `json:"worstVendor"`
	Savings     float64     `json:"savings"`
}

// CostAnalysis is the vendor comparison produced by the cost model.
type CostAnalysis struct {
	Multipliers   CostMultipliers     `json:"multipliers"`
	Weights       StageWeights        `json:"weights"`
	AdjustedCosts []VendorCostProfile `json:"adjustedCosts"`
	TotalByVendor []VendorTotal       `json:"totalByVendor"` // ascending by total
	BestByStage   map[Stage]StageBest `json:"bestByStage"`
	Insights      CostInsights        `json:"insights"`
}

// EnvironmentalImpact is the debris and sustainability section of a mission report.
type EnvironmentalImpact struct {
	DebrisRiskAssessment  string   `json:"debris_risk_assessment"`
	OrbitalSustainability string   `json:"orbital_sustainability"`
	CollisionProbability  string   `json:"collision_probability"`
	MitigationStrategies  []string `json:"mitigation_strategies"`
}

// RegulatoryNotes is the licensing section of a mission report.
type RegulatoryNotes struct {
	LicensingRequirements       []string `json:"licensing_requirements"`
	ComplianceChecklist         []string `json:"compliance_checklist"`
	InternationalConsiderations []string `json:"international_considerations"`
}

// FinancialAnalysis is the cost and market section of a mission report.
type FinancialAnalysis struct {
	CostBreakdown       string   `json:"cost_breakdown"`
	RiskFactors         []string `json:"risk_factors"`
	MarketOpportunities []string `json:"market_opportunities"`
	ROIProjection       string   `json:"roi_projection"`
}

// TechnicalInsights is the orbital mechanics section of a mission report.
type TechnicalInsights struct {
	LaunchWindowOptimization string `json:"launch_window_optimization"`
	OrbitalMechanics         string `json:"orbital_mechanics"`
	MissionTimeline          string `json:"mission_timeline"`
	SuccessProbability       int    `json:"success_probability"` // 0-100
}

// MissionReport is the narrative report. Its shape is fixed regardless of
// whether it was produced by a model or by the local template.
type MissionReport struct {
	Summary             string              `json:"summary"`
	Recommendations     Recommendations     `json:"recommendations"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmental_impact"`
	RegulatoryNotes     RegulatoryNotes     `json:"regulatory_notes"`
	FinancialAnalysis   FinancialAnalysis   `json:"financial_analysis"`
	TechnicalInsights   TechnicalInsights   `json:"technical_insights"`
	Source              string              `json:"source"`
}

// Analysis is the final output of a leoplan run for one mission.
type Analysis struct {
	ID        string            `json:"id"`
	Name      string            `json:"name,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Mission   MissionParameters `json:"mission"`
	Scores    ScoreResult       `json:"scores"`
	Cost      CostAnalysis      `json:"cost"`
	Report    *MissionReport    `json:"report,omitempty"`
	Duration  time.Duration     `json:"duration"`
}
