// Package prompts provides LLM prompt templates for the mission analysis report.
package prompts

import "fmt"

const analysisSystemPrompt = `You are a senior LEO (Low Earth Orbit) space mission analyst and consultant with expertise in commercial space ventures, orbital mechanics, space debris mitigation, and regulatory compliance.
Your analysis must be beginner-friendly while staying technically accurate.

You MUST respond with valid JSON only. No markdown, no commentary outside the JSON.

Response format:
{
  "summary": "2-3 paragraph executive summary of viability, key strengths and main concerns",
  "recommendations": {
    "mandatory": ["3-5 critical requirements"],
    "recommended": ["3-5 important improvements"],
    "baseline": ["3-5 additional considerations"]
  },
  "environmental_impact": {
    "debris_risk_assessment": "debris risk at the target altitude",
    "orbital_sustainability": "impact on long-term orbital sustainability",
    "collision_probability": "collision risk estimate",
    "mitigation_strategies": ["4-6 debris mitigation techniques"]
  },
  "regulatory_notes": {
    "licensing_requirements": ["4-6 licenses and permits"],
    "compliance_checklist": ["5-7 compliance steps"],
    "international_considerations": ["3-5 international coordination requirements"]
  },
  "financial_analysis": {
    "cost_breakdown": "expected launch, development, operations and compliance costs",
    "risk_factors": ["4-6 financial risks"],
    "market_opportunities": ["3-5 revenue opportunities"],
    "roi_projection": "return on investment timeline and assumptions"
  },
  "technical_insights": {
    "launch_window_optimization": "optimal launch timing",
    "orbital_mechanics": "perturbations and station-keeping for the chosen orbit",
    "mission_timeline": "phases from development to deorbit",
    "success_probability": 0
  }
}

success_probability is an integer between 0 and 100.`

// AnalysisPrompt builds the user prompt for the mission analysis report.
func AnalysisPrompt(missionContext string) string {
	return fmt.Sprintf(`Analyze the following LEO commercial mission parameters and provide a comprehensive, beginner-friendly analysis.
Explain complex concepts in simple terms and provide actionable recommendations. Consider current space industry trends, emerging regulations and best practices for commercial LEO operations.

%s
Respond with JSON only.`, missionContext)
}

// AnalysisSystemPrompt returns the system prompt for the mission analysis report.
func AnalysisSystemPrompt() string {
	return analysisSystemPrompt
}
