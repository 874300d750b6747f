package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

// Gemini defaults.
const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1"
	DefaultGeminiModel    = "gemini-pro"
)

// GeminiProvider implements ai.LLMProvider for Google's generateContent API.
type GeminiProvider struct {
	config ai.ProviderConfig
	client *http.Client
}

// NewGeminiProvider creates a Gemini provider. Empty endpoint and model take
// the public API defaults.
func NewGeminiProvider(cfg ai.ProviderConfig, timeout time.Duration) *GeminiProvider {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGeminiEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &GeminiProvider{
		config: cfg,
		client: newHTTPClient(timeout),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user turn. The v1 API has no system
// role, so the system prompt is prepended to the user text.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string, opts ai.CompletionOpts) (string, error) {
	text := prompt
	if opts.SystemPrompt != "" {
		text = opts.SystemPrompt + "\n\n" + prompt
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: text}}}},
	}
	if opts.MaxTokens > 0 || opts.Temperature > 0 {
		gc := &geminiGenerationConfig{MaxOutputTokens: opts.MaxTokens}
		if opts.Temperature > 0 {
			t := opts.Temperature
			gc.Temperature = &t
		}
		reqBody.GenerationConfig = gc
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.config.Endpoint, p.config.Model)
	respBody, err := postJSON(ctx, p.client, url, p.headers(), reqBody)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("ai: decoding response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("ai: provider error: %s", resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ai: provider returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// Available checks that a key is configured and the model can be described.
func (p *GeminiProvider) Available(ctx context.Context) bool {
	if p.config.APIKey == "" {
		return false
	}
	return reachable(ctx, p.client, fmt.Sprintf("%s/models/%s", p.config.Endpoint, p.config.Model), p.headers())
}

func (p *GeminiProvider) headers() map[string]string {
	return map[string]string{"x-goog-api-key": p.config.APIKey}
}
