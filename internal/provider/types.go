package provider

import (
	"context"
	"time"
)

// Generator is the capability contract shared by the chat vendors. Model,
// temperature and output budget are bound at construction; a call carries
// only the two prompt halves.
type Generator interface {
	// Name returns the provider identifier ("openai" or "anthropic").
	Name() string
	// Generate produces a completion for the given system and user prompts.
	// An empty string with a nil error means the vendor answered with
	// nothing; callers decide what that degrades to.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds the construction-time binding for a vendor client.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultMaxTokens caps the answer length when Config.MaxTokens is unset.
const DefaultMaxTokens = 1000
