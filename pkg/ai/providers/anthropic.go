package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

// AnthropicMessager defines the subset of the Anthropic client we use.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicClientCreator builds the messages client. It exists so tests can
// inject a mock.
type AnthropicClientCreator func(cfg ai.ProviderConfig, timeout time.Duration) AnthropicMessager

func defaultAnthropicCreator(cfg ai.ProviderConfig, timeout time.Duration) AnthropicMessager {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	client := anthropic.NewClient(opts...)
	return &client.Messages
}

// newAnthropicClient is the package-level creator, overridable in tests.
var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// AnthropicProvider implements ai.LLMProvider for Anthropic's Messages API.
type AnthropicProvider struct {
	config   ai.ProviderConfig
	messages AnthropicMessager
}

// NewAnthropicProvider creates an Anthropic provider. An empty model selects
// the SDK's Sonnet 4 constant.
func NewAnthropicProvider(cfg ai.ProviderConfig, timeout time.Duration) *AnthropicProvider {
	if cfg.Model == "" {
		cfg.Model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	return &AnthropicProvider{
		config:   cfg,
		messages: newAnthropicClient(cfg, timeout),
	}
}

// Complete sends one user message and joins the text blocks of the reply.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string, opts ai.CompletionOpts) (string, error) {
	maxTokens := int64(opts.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.config.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if opts.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: opts.SystemPrompt}}
	}
	if opts.Temperature > 0 {
		params.Temperature = anthropic.Float(opts.Temperature)
	}

	resp, err := p.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("ai: claude API call failed: %w", err)
	}

	var textParts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}
	text := strings.Join(textParts, "")
	if text == "" {
		return "", fmt.Errorf("ai: empty response from Claude API")
	}
	return text, nil
}

// Available reports whether a key is configured. The SDK offers no cheap reachability check.
func (p *AnthropicProvider) Available(_ context.Context) bool {
	return p.config.APIKey != ""
}
