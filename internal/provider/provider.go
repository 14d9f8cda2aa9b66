package provider

import (
	"fmt"

	"github.com/mkrall/ragline/internal/config"
	"go.uber.org/zap"
)

// FromSettings binds exactly one vendor client according to the configured
// provider. Anything other than the two supported providers is a fatal
// configuration error; there is no silent default.
func FromSettings(cfg *config.Settings, logger *zap.Logger) (Generator, error) {
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(Config{
			Endpoint:    cfg.AI.OpenAIEndpoint,
			APIKey:      cfg.AI.OpenAIAPIKey,
			Model:       cfg.AI.OpenAIChatModel,
			Temperature: cfg.AI.Temperature,
		}, logger), nil
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(Config{
			Endpoint:    cfg.AI.AnthropicEndpoint,
			APIKey:      cfg.AI.AnthropicAPIKey,
			Model:       cfg.AI.AnthropicChatModel,
			Temperature: cfg.AI.Temperature,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", cfg.AI.Provider)
	}
}
