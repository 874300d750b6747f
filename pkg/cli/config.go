// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
)

// DefaultConfigFile is read from the working directory when --config is unset.
const DefaultConfigFile = ".leoplan.yml"

// DefaultAPIKeyEnv names the environment variable holding the AI credential.
const DefaultAPIKeyEnv = "LEOPLAN_AI_API_KEY"

// Config represents the .leoplan.yml configuration file.
type Config struct {
	Version    string          `yaml:"version"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Catalog    CatalogConfig   `yaml:"catalog"`
	AI         AIConfig        `yaml:"ai"`
	Output     OutputConfig    `yaml:"output"`
	Server     ServerConfig    `yaml:"server"`
	Batch      BatchConfig     `yaml:"batch"`
}

// ThresholdConfig holds the viability rating bands. A score strictly above
// Excellent is excellent, strictly above Good is good.
type ThresholdConfig struct {
	Excellent int `yaml:"excellent" validate:"gte=0,lte=100,gtfield=Good"`
	Good      int `yaml:"good" validate:"gte=0,lte=100"`
}

// ScoringConfig selects the scoring policy.
type ScoringConfig struct {
	Policy string `yaml:"policy" validate:"oneof=heuristic reference"`
}

// CatalogConfig points at an optional reference-table override.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// AIConfig holds configuration for the narrative report provider.
type AIConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Provider  string        `yaml:"provider" validate:"oneof=gemini openai-compatible anthropic"`
	Endpoint  string        `yaml:"endpoint" validate:"omitempty,url"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env" validate:"required"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	MaxTokens int           `yaml:"max_tokens" validate:"gte=0"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format" validate:"oneof=terminal json markdown md html xlsx"`
	Verbose bool   `yaml:"verbose"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr        string  `yaml:"addr" validate:"required"`
	ReportRPS   float64 `yaml:"report_rps" validate:"gt=0"`
	ReportBurst int     `yaml:"report_burst" validate:"gt=0"`
}

// BatchConfig controls concurrent batch analysis.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" validate:"gt=0"`
}

// LoadConfig reads and parses a .leoplan.yml configuration file.
// If path is empty, it looks for .leoplan.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cli: invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the documented
// .leoplan.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// Validate checks field constraints after defaults have been applied.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// APIKey reads the AI credential from the configured environment variable.
func (c *Config) APIKey() string {
	return strings.TrimSpace(os.Getenv(c.AI.APIKeyEnv))
}

// ProviderConfig converts the ai section for the provider factory. The key is
// taken from the environment, never from the file.
func (c *Config) ProviderConfig() ai.ProviderConfig {
	return ai.ProviderConfig{
		Type:     ai.ProviderType(c.AI.Provider),
		Endpoint: c.AI.Endpoint,
		Model:    c.AI.Model,
		APIKey:   c.APIKey(),
	}
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Thresholds.Excellent == 0 {
		cfg.Thresholds.Excellent = 70
	}
	if cfg.Thresholds.Good == 0 {
		cfg.Thresholds.Good = 50
	}
	if cfg.Scoring.Policy == "" {
		cfg.Scoring.Policy = "heuristic"
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = string(ai.ProviderGemini)
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30 * time.Second
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReportRPS == 0 {
		cfg.Server.ReportRPS = 1
	}
	if cfg.Server.ReportBurst == 0 {
		cfg.Server.ReportBurst = 3
	}
	if cfg.Batch.Concurrency == 0 {
		cfg.Batch.Concurrency = 4
	}

	// Auto-enable the AI report when an API key is present in environment.
	if !cfg.AI.Enabled && os.Getenv(cfg.AI.APIKeyEnv) != "" {
		cfg.AI.Enabled = true
		slog.Info("AI report auto-enabled (API key detected)")
	}
}
