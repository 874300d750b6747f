package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider talks to any server implementing the OpenAI chat completions
// API: OpenAI itself, OpenRouter, Ollama, vLLM and the like. The report is
// requested in JSON mode.
type OpenAIProvider struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// NewOpenAIProvider creates a provider for cfg.Endpoint.
func NewOpenAIProvider(cfg ai.ProviderConfig, timeout time.Duration) *OpenAIProvider {
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    model,
		apiKey:   cfg.APIKey,
		client:   newHTTPClient(timeout),
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implements ai.LLMProvider.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, opts ai.CompletionOpts) (string, error) {
	req := chatRequest{
		Model:          p.model,
		MaxTokens:      opts.MaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	if opts.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: opts.SystemPrompt})
	}
	req.Messages = append(req.Messages, chatMessage{Role: "user", Content: prompt})
	if opts.Temperature > 0 {
		req.Temperature = &opts.Temperature
	}

	body, err := postJSON(ctx, p.client, p.endpoint+"/chat/completions", p.headers(), req)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("ai: decoding openai response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("ai: provider error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ai: provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Available lists the endpoint's models as a reachability check.
func (p *OpenAIProvider) Available(ctx context.Context) bool {
	if p.endpoint == "" {
		return false
	}
	if !reachable(ctx, p.client, p.endpoint+"/models", p.headers()) {
		slog.Debug("ai: endpoint unreachable", "endpoint", redactURL(p.endpoint))
		return false
	}
	return true
}

func (p *OpenAIProvider) headers() map[string]string {
	if p.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + p.apiKey}
}
