package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Config holds the embedding client configuration.
type Config struct {
	Endpoint  string
	APIKey    string
	Model     string
	Dimension int
	Timeout   time.Duration
}

// Generator converts text into dense vectors through the OpenAI embeddings
// API. It is stateless after construction and safe for concurrent use.
//
// Unlike answer synthesis, embedding failures always propagate: they block
// an ingestion or query pipeline and the caller decides whether to retry.
type Generator struct {
	config Config
	client *http.Client
	logger *zap.Logger

	once   sync.Once
	dimSet int
}

// NewGenerator creates an embedding client bound to a single vendor model.
func NewGenerator(cfg Config, logger *zap.Logger) *Generator {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.openai.com/v1"
	}
	return &Generator{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedData struct {
	Embedding []float32 `json:"embedding"`
}

type embedResponse struct {
	Data []embedData `json:"data"`
}

// EmbedMany embeds all texts in one batched remote call. The result has one
// vector per input, in input order. Oversized batches are not split here;
// vendor-side limits surface as errors.
func (g *Generator) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	body, err := json.Marshal(embedRequest{
		Model: g.config.Model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.config.Endpoint+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("embedding: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("embedding request failed", zap.Error(err))
		return nil, fmt.Errorf("embedding: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("embedding: API error %d: %s", resp.StatusCode, string(respBody))
		g.logger.Error("embedding request failed", zap.Error(err))
		return nil, err
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		g.logger.Error("embedding response malformed", zap.Error(err))
		return nil, fmt.Errorf("embedding: decode response: %w", err)
	}
	if len(result.Data) != len(texts) {
		err := fmt.Errorf("embedding: got %d vectors for %d inputs", len(result.Data), len(texts))
		g.logger.Error("embedding response malformed", zap.Error(err))
		return nil, err
	}

	vectors := make([][]float32, len(result.Data))
	for i, d := range result.Data {
		vectors[i] = d.Embedding
	}

	// Cache dimension from first successful result.
	if len(vectors[0]) > 0 {
		g.once.Do(func() {
			g.dimSet = len(vectors[0])
		})
	}

	g.logger.Info("generated embeddings", zap.Int("count", len(texts)))
	return vectors, nil
}

// EmbedOne embeds a single text. Equivalent to EmbedMany with one element.
func (g *Generator) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// Dimension returns the embedding vector dimension: the cached length from
// the first result, or the configured default before any call succeeds.
func (g *Generator) Dimension() int {
	if g.dimSet > 0 {
		return g.dimSet
	}
	return g.config.Dimension
}
