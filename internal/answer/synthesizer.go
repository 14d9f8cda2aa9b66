package answer

import (
	"context"
	"fmt"

	"github.com/mkrall/ragline/internal/config"
	"github.com/mkrall/ragline/internal/provider"
	"go.uber.org/zap"
)

const systemPrompt = `You are a helpful AI assistant for customer support that answers questions based on provided context.

IMPORTANT RULES:
1. For questions about policies, returns, shipping, sizing, or support: Answer ONLY using the provided context and include citations
2. For general greetings or casual conversation: You can respond naturally and friendly
3. For questions outside your knowledge base: Politely redirect to relevant policies or suggest contacting support
4. Always include citations [chunk_id] when using context information
5. Be concise but comprehensive
6. Maintain a helpful, professional tone`

const (
	// fallbackAnswer replaces an empty vendor answer.
	fallbackAnswer = "I couldn't generate an answer."
	// errorAnswerPrefix prefixes the in-band answer returned when synthesis
	// fails.
	errorAnswerPrefix = "I encountered an error while processing your question: "
)

// Synthesizer turns a query and retrieved context blocks into a cited
// answer through the bound chat provider. It is stateless after
// construction and safe for concurrent use.
type Synthesizer struct {
	generator provider.Generator
	logger    *zap.Logger
}

// NewSynthesizer binds exactly one chat provider according to settings.
// An unsupported provider value fails here, before any remote call.
func NewSynthesizer(cfg *config.Settings, logger *zap.Logger) (*Synthesizer, error) {
	gen, err := provider.FromSettings(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("initialized answer synthesizer", zap.String("provider", gen.Name()))
	return &Synthesizer{generator: gen, logger: logger}, nil
}

// NewSynthesizerWithGenerator binds an already-constructed generator.
func NewSynthesizerWithGenerator(gen provider.Generator, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{generator: gen, logger: logger}
}

// Synthesize produces a cited answer for the query grounded in the given
// context blocks, in the order given.
//
// This path faces an end user, so it never returns an error: any failure is
// logged and converted into a readable in-band answer string. The embedding
// path deliberately does the opposite.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, blocks []ContextBlock) string {
	userPrompt := fmt.Sprintf(`Context:
%s

Question: %s

Please provide an answer based on the context above, including appropriate citations.`, renderContext(blocks), query)

	text, err := s.generator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.logger.Error("answer synthesis failed",
			zap.String("provider", s.generator.Name()), zap.Error(err))
		return errorAnswerPrefix + err.Error()
	}

	s.logger.Info("generated answer", zap.String("provider", s.generator.Name()))
	if text == "" {
		return fallbackAnswer
	}
	return text
}

// Provider returns the bound provider's identifier.
func (s *Synthesizer) Provider() string {
	return s.generator.Name()
}
