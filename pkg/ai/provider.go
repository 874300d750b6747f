// Package ai produces the narrative mission report. A report comes either from
// a language model (Gemini, an OpenAI-compatible endpoint or Anthropic) or from
// the deterministic local template, and a model failure always degrades to the
// local report.
package ai

import "context"

// ProviderType identifies the wire protocol of a model backend.
type ProviderType string

const (
	ProviderGemini           ProviderType = "gemini"
	ProviderOpenAICompatible ProviderType = "openai-compatible"
	ProviderAnthropic        ProviderType = "anthropic"
)

// ProviderConfig describes one model backend. Endpoint and Model may be empty,
// in which case each provider uses its documented default. APIKey is read from
// the environment by the caller and never written anywhere.
type ProviderConfig struct {
	Type     ProviderType
	Endpoint string
	Model    string
	APIKey   string
}

// CompletionOpts tunes a single completion. Zero values leave the provider default.
type CompletionOpts struct {
	MaxTokens    int
	Temperature  float64
	SystemPrompt string
}

// LLMProvider is a text-completion backend.
type LLMProvider interface {
	// Complete returns the model's text for prompt.
	Complete(ctx context.Context, prompt string, opts CompletionOpts) (string, error)

	// Available reports whether the backend is configured and answering.
	Available(ctx context.Context) bool
}
