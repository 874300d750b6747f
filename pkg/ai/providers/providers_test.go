package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

func TestGeminiProvider_Complete(t *testing.T) {
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-pro:generateContent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("API key must not travel in the query string: %q", r.URL.RawQuery)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "secret" {
			t.Errorf("api key header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"summary\":"},{"text":"\"ok\"}"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider(ai.ProviderConfig{Endpoint: srv.URL + "/", APIKey: "secret"}, time.Second)
	out, err := p.Complete(context.Background(), "analyse", ai.CompletionOpts{SystemPrompt: "be brief", MaxTokens: 100, Temperature: 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"summary":"ok"}` {
		t.Errorf("output = %q", out)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "be brief\n\nanalyse" {
		t.Errorf("request contents = %+v", gotBody.Contents)
	}
	if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.MaxOutputTokens != 100 {
		t.Errorf("generation config = %+v", gotBody.GenerationConfig)
	}
}

func TestGeminiProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"rate limited", http.StatusTooManyRequests, `{}`, "429"},
		{"server error", http.StatusInternalServerError, `boom`, "HTTP 500"},
		{"api error", http.StatusOK, `{"error":{"code":400,"message":"bad key"}}`, "bad key"},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, "no candidates"},
		{"not json", http.StatusOK, `<html>`, "decoding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewGeminiProvider(ai.ProviderConfig{Endpoint: srv.URL, APIKey: "k"}, time.Second)
			_, err := p.Complete(context.Background(), "x", ai.CompletionOpts{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestGeminiProvider_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-pro" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if !NewGeminiProvider(ai.ProviderConfig{Endpoint: srv.URL, APIKey: "k"}, time.Second).Available(context.Background()) {
		t.Error("expected available")
	}
	if NewGeminiProvider(ai.ProviderConfig{Endpoint: srv.URL}, time.Second).Available(context.Background()) {
		t.Error("expected unavailable without key")
	}
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("authorization = %q", auth)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"summary\":\"ok\"}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(ai.ProviderConfig{Endpoint: srv.URL, Model: "llama3", APIKey: "sk-test"}, time.Second)
	out, err := p.Complete(context.Background(), "analyse", ai.CompletionOpts{SystemPrompt: "sys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"summary":"ok"}` {
		t.Errorf("output = %q", out)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "analyse" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("response format = %+v", got.ResponseFormat)
	}
}

func TestOpenAIProvider_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	if !NewOpenAIProvider(ai.ProviderConfig{Endpoint: srv.URL, Model: "m"}, time.Second).Available(context.Background()) {
		t.Error("expected available")
	}
	if NewOpenAIProvider(ai.ProviderConfig{Model: "m"}, time.Second).Available(context.Background()) {
		t.Error("expected unavailable without endpoint")
	}
}

type mockMessager struct {
	params anthropic.MessageNewParams
	resp   *anthropic.Message
	err    error
}

func (m *mockMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.params = params
	return m.resp, m.err
}

func withMessager(t *testing.T, m *mockMessager) {
	t.Helper()
	orig := newAnthropicClient
	newAnthropicClient = func(ai.ProviderConfig, time.Duration) AnthropicMessager { return m }
	t.Cleanup(func() { newAnthropicClient = orig })
}

func TestAnthropicProvider_Complete(t *testing.T) {
	m := &mockMessager{resp: &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: `{"summary":`},
			{Type: "text", Text: `"ok"}`},
		},
	}}
	withMessager(t, m)

	p := NewAnthropicProvider(ai.ProviderConfig{APIKey: "k"}, time.Second)
	out, err := p.Complete(context.Background(), "analyse", ai.CompletionOpts{SystemPrompt: "sys", MaxTokens: 512})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"summary":"ok"}` {
		t.Errorf("output = %q", out)
	}
	if m.params.MaxTokens != 512 {
		t.Errorf("max tokens = %d", m.params.MaxTokens)
	}
	if string(m.params.Model) != string(anthropic.ModelClaudeSonnet4_20250514) {
		t.Errorf("model = %q", m.params.Model)
	}
	if len(m.params.System) != 1 || m.params.System[0].Text != "sys" {
		t.Errorf("system = %+v", m.params.System)
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	withMessager(t, &mockMessager{err: errors.New("overloaded")})
	p := NewAnthropicProvider(ai.ProviderConfig{APIKey: "k"}, time.Second)
	if _, err := p.Complete(context.Background(), "x", ai.CompletionOpts{}); err == nil {
		t.Error("expected error from API failure")
	}

	withMessager(t, &mockMessager{resp: &anthropic.Message{}})
	p = NewAnthropicProvider(ai.ProviderConfig{APIKey: "k"}, time.Second)
	if _, err := p.Complete(context.Background(), "x", ai.CompletionOpts{}); err == nil {
		t.Error("expected error for empty response")
	}
	if !p.Available(context.Background()) {
		t.Error("expected available with key")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ai.ProviderConfig
		want    string
		wantErr bool
	}{
		{"default is gemini", ai.ProviderConfig{}, "*providers.GeminiProvider", false},
		{"gemini", ai.ProviderConfig{Type: ai.ProviderGemini}, "*providers.GeminiProvider", false},
		{"openai", ai.ProviderConfig{Type: ai.ProviderOpenAICompatible, Endpoint: "http://localhost:11434/v1"}, "*providers.OpenAIProvider", false},
		{"openai without endpoint", ai.ProviderConfig{Type: ai.ProviderOpenAICompatible}, "", true},
		{"anthropic", ai.ProviderConfig{Type: ai.ProviderAnthropic, APIKey: "k"}, "*providers.AnthropicProvider", false},
		{"unknown", ai.ProviderConfig{Type: "carrier-pigeon"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg, time.Second)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := typeName(p); got != tt.want {
				t.Errorf("type = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(p ai.LLMProvider) string {
	switch p.(type) {
	case *GeminiProvider:
		return "*providers.GeminiProvider"
	case *OpenAIProvider:
		return "*providers.OpenAIProvider"
	case *AnthropicProvider:
		return "*providers.AnthropicProvider"
	}
	return "unknown"
}

func TestRedactURL(t *testing.T) {
	if got := redactURL("https://x/models/m:generateContent?key=abc"); got != "https://x/models/m:generateContent" {
		t.Errorf("redactURL = %q", got)
	}
}
