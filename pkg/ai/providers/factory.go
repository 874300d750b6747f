package providers

import (
	"fmt"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

// New builds the provider named by cfg.Type. An empty type selects Gemini.
func New(cfg ai.ProviderConfig, timeout time.Duration) (ai.LLMProvider, error) {
	switch cfg.Type {
	case "", ai.ProviderGemini:
		return NewGeminiProvider(cfg, timeout), nil
	case ai.ProviderOpenAICompatible:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("ai: %s provider requires an endpoint", cfg.Type)
		}
		return NewOpenAIProvider(cfg, timeout), nil
	case ai.ProviderAnthropic:
		return NewAnthropicProvider(cfg, timeout), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider type %q", cfg.Type)
	}
}
