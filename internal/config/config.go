package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Supported AI provider identifiers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Settings is the top-level configuration structure. It is loaded once at
// startup and treated as read-only afterwards.
type Settings struct {
	Server ServerConfig `json:"server"`
	AI     AIConfig     `json:"ai"`
}

type ServerConfig struct {
	Port     int    `json:"port"`
	LogLevel string `json:"log_level"`
}

// AIConfig selects the chat provider and carries per-vendor credentials and
// model names. Endpoint overrides are optional and mainly serve
// OpenAI-compatible gateways and test stubs.
type AIConfig struct {
	Provider           string  `json:"provider"` // "openai" or "anthropic"
	OpenAIAPIKey       string  `json:"openai_api_key"`
	AnthropicAPIKey    string  `json:"anthropic_api_key"`
	OpenAIEmbedModel   string  `json:"openai_embed_model"`
	OpenAIChatModel    string  `json:"openai_chat_model"`
	AnthropicChatModel string  `json:"anthropic_chat_model"`
	Temperature        float64 `json:"temperature"`
	OpenAIEndpoint     string  `json:"openai_endpoint,omitempty"`
	AnthropicEndpoint  string  `json:"anthropic_endpoint,omitempty"`
}

// envVarRe matches ${VAR} and ${VAR:default} patterns.
var envVarRe = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// Load reads a JSON config file and substitutes environment variable references.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Substitute ${VAR} and ${VAR:default} with environment values.
	resolved := envVarRe.ReplaceAllStringFunc(string(data), func(match string) string {
		parts := envVarRe.FindStringSubmatch(match)
		name := parts[1]
		defaultVal := parts[2]
		if v := os.Getenv(name); v != "" {
			return v
		}
		return defaultVal
	})

	var cfg Settings
	if err := json.Unmarshal([]byte(resolved), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would otherwise fail at request time.
// An unsupported provider is a startup error, never a runtime fallback.
func (c *Settings) Validate() error {
	switch c.AI.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		return nil
	default:
		return fmt.Errorf("unsupported AI provider: %q", c.AI.Provider)
	}
}
