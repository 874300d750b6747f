package interfaces

import "context"

// ReportGenerator produces the narrative mission report.
// Implementations range from a deterministic local template to a model-backed
// generator; all of them return the same fixed-shape MissionReport.
type ReportGenerator interface {
	// Generate builds a report for the mission and its computed scores.
	Generate(ctx context.Context, params *MissionParameters, scores *ScoreResult) (*MissionReport, error)
}

// Pipeline orchestrates the full planning workflow for one mission.
// It coordinates the scorer, the cost model and the report generator.
type Pipeline interface {
	// Run scores the mission, prices it and attaches a report.
	Run(ctx context.Context, params *MissionParameters) (*Analysis, error)
}
