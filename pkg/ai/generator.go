package ai

import (
	"strings"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// NewGenerator selects the report generator by credential. Without an API key
// or provider the local generator is used directly; otherwise the network
// generator is wrapped so that any failure falls back to the local report.
func NewGenerator(provider LLMProvider, apiKey string, timeout time.Duration, opts ...Option) interfaces.ReportGenerator {
	if provider == nil || strings.TrimSpace(apiKey) == "" {
		return NewLocalGenerator()
	}
	return NewFallbackGenerator(NewNetworkGenerator(provider, opts...), timeout)
}
