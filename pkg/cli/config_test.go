package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".leoplan.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnv, "")
	cfg := DefaultConfig()

	if cfg.Thresholds.Excellent != 70 || cfg.Thresholds.Good != 50 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.Scoring.Policy != "heuristic" {
		t.Errorf("policy = %q", cfg.Scoring.Policy)
	}
	if cfg.AI.Provider != string(ai.ProviderGemini) || cfg.AI.APIKeyEnv != DefaultAPIKeyEnv {
		t.Errorf("ai = %+v", cfg.AI)
	}
	if cfg.AI.Enabled {
		t.Error("AI should be disabled without a key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("format = %q", cfg.Output.Format)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
version: "1"
thresholds:
  excellent: 80
  good: 60
scoring:
  policy: reference
catalog:
  path: ./catalog.yml
ai:
  provider: openai-compatible
  endpoint: http://localhost:11434/v1
  model: llama3
  api_key_env: MY_KEY
  timeout: 45s
output:
  format: html
server:
  addr: 127.0.0.1:9090
  report_rps: 0.5
  report_burst: 2
`)
	t.Setenv("MY_KEY", " sk-local ")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Excellent != 80 || cfg.Thresholds.Good != 60 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.Scoring.Policy != "reference" || cfg.Catalog.Path != "./catalog.yml" {
		t.Errorf("scoring/catalog = %+v %+v", cfg.Scoring, cfg.Catalog)
	}
	if cfg.AI.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.AI.Timeout)
	}
	if !cfg.AI.Enabled {
		t.Error("AI should auto-enable when the key is set")
	}
	if cfg.Server.ReportRPS != 0.5 || cfg.Server.ReportBurst != 2 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Batch.Concurrency != 4 {
		t.Errorf("batch concurrency default = %d", cfg.Batch.Concurrency)
	}

	pc := cfg.ProviderConfig()
	if pc.Type != ai.ProviderOpenAICompatible || pc.APIKey != "sk-local" || pc.Model != "llama3" {
		t.Errorf("provider config = %+v", pc)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad policy", "scoring:\n  policy: vibes\n", "Policy"},
		{"bad provider", "ai:\n  provider: carrier-pigeon\n", "Provider"},
		{"bad format", "output:\n  format: pdf\n", "Format"},
		{"inverted thresholds", "thresholds:\n  excellent: 40\n  good: 60\n", "Excellent"},
		{"bad endpoint", "ai:\n  endpoint: not a url\n", "Endpoint"},
		{"bad yaml", "thresholds: [\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
