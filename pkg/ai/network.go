package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai/prompts"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// SourceNetwork marks reports produced by an LLM provider.
const SourceNetwork = "network"

const (
	defaultMaxTokens     = 4096
	defaultMaxAttempts   = 2
	defaultRetryInterval = 500 * time.Millisecond
)

// jsonObject matches from the first '{' to the last '}' in a response.
var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// NetworkGenerator implements interfaces.ReportGenerator using an LLM provider.
type NetworkGenerator struct {
	provider      LLMProvider
	maxTokens     int
	maxAttempts   uint
	retryInterval time.Duration
}

// Option configures a NetworkGenerator.
type Option func(*NetworkGenerator)

// WithMaxTokens sets the completion budget requested from the provider.
func WithMaxTokens(n int) Option {
	return func(g *NetworkGenerator) {
		g.maxTokens = n
	}
}

// WithRetry sets how many times a failed completion is attempted and the
// initial interval between attempts.
func WithRetry(attempts uint, interval time.Duration) Option {
	return func(g *NetworkGenerator) {
		g.maxAttempts = attempts
		g.retryInterval = interval
	}
}

// NewNetworkGenerator creates a report generator backed by the given LLM provider.
func NewNetworkGenerator(provider LLMProvider, opts ...Option) *NetworkGenerator {
	g := &NetworkGenerator{
		provider:      provider,
		maxTokens:     defaultMaxTokens,
		maxAttempts:   defaultMaxAttempts,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxAttempts == 0 {
		g.maxAttempts = 1
	}
	return g
}

// Generate asks the provider for a report. Provider failures are retried;
// an unusable response is returned as an error for the caller to recover.
func (g *NetworkGenerator) Generate(ctx context.Context, params *interfaces.MissionParameters, scores *interfaces.ScoreResult) (*interfaces.MissionReport, error) {
	if params == nil || scores == nil {
		return nil, fmt.Errorf("ai: mission parameters and scores are required")
	}

	prompt := prompts.AnalysisPrompt(BuildContext(params, scores))
	opts := CompletionOpts{
		MaxTokens:    g.maxTokens,
		Temperature:  0.2,
		SystemPrompt: prompts.AnalysisSystemPrompt(),
	}

	start := time.Now()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.retryInterval

	response, err := backoff.Retry(ctx, func() (string, error) {
		resp, err := g.provider.Complete(ctx, prompt, opts)
		if err != nil {
			slog.Debug("ai: completion attempt failed", "error", err)
		}
		return resp, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(g.maxAttempts))
	if err != nil {
		return nil, fmt.Errorf("ai: completing report: %w", err)
	}

	report, err := parseReport(response)
	if err != nil {
		return nil, err
	}

	slog.Info("AI report complete", "duration", time.Since(start), "success_probability", report.TechnicalInsights.SuccessProbability)
	return report, nil
}

// Available returns true if the LLM provider is configured and reachable.
func (g *NetworkGenerator) Available(ctx context.Context) bool {
	return g.provider.Available(ctx)
}

// llmReport mirrors MissionReport but accepts a fractional success probability.
type llmReport struct {
	Summary             string                         `json:"summary"`
	Recommendations     interfaces.Recommendations     `json:"recommendations"`
	EnvironmentalImpact interfaces.EnvironmentalImpact `json:"environmental_impact"`
	RegulatoryNotes     interfaces.RegulatoryNotes     `json:"regulatory_notes"`
	FinancialAnalysis   interfaces.FinancialAnalysis   `json:"financial_analysis"`
	TechnicalInsights   struct {
		LaunchWindowOptimization string  `json:"launch_window_optimization"`
		OrbitalMechanics         string  `json:"orbital_mechanics"`
		MissionTimeline          string  `json:"mission_timeline"`
		SuccessProbability       float64 `json:"success_probability"`
	} `json:"technical_insights"`
}

// parseReport extracts the outermost JSON object from the response text and
// checks it carries a usable report.
func parseReport(response string) (*interfaces.MissionReport, error) {
	response = stripCodeFences(response)

	raw := jsonObject.FindString(response)
	if raw == "" {
		slog.Debug("ai: no JSON object in response", "response_prefix", truncateStr(response, 200))
		return nil, fmt.Errorf("ai: response contains no JSON object")
	}

	var r llmReport
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		slog.Debug("ai: failed to parse LLM response as JSON", "error", err, "response_prefix", truncateStr(raw, 200))
		return nil, fmt.Errorf("ai: decoding report: %w", err)
	}

	if strings.TrimSpace(r.Summary) == "" {
		return nil, fmt.Errorf("ai: report has no summary")
	}
	recs := r.Recommendations
	if len(recs.Mandatory)+len(recs.Recommended)+len(recs.Baseline) == 0 {
		return nil, fmt.Errorf("ai: report has no recommendations")
	}

	return &interfaces.MissionReport{
		Summary:             r.Summary,
		Recommendations:     recs,
		EnvironmentalImpact: r.EnvironmentalImpact,
		RegulatoryNotes:     r.RegulatoryNotes,
		FinancialAnalysis:   r.FinancialAnalysis,
		TechnicalInsights: interfaces.TechnicalInsights{
			LaunchWindowOptimization: r.TechnicalInsights.LaunchWindowOptimization,
			OrbitalMechanics:         r.TechnicalInsights.OrbitalMechanics,
			MissionTimeline:          r.TechnicalInsights.MissionTimeline,
			SuccessProbability:       clampProbability(r.TechnicalInsights.SuccessProbability),
		},
		Source: SourceNetwork,
	}, nil
}

func clampProbability(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

// stripCodeFences removes markdown code fences (```json ... ```) from the response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Remove opening fence (```json or ```)
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}

// truncateStr shortens a string for logging purposes.
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
