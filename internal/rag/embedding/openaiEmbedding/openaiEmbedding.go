package openaiEmbedding

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

// Alternative embedder for deployments without GCP access. Same vector
// dimensionality as the Google embedder so the two are interchangeable
// against an existing collection only after re-ingestion.
type client struct {
	openai openai.Client
	model  string
	logger *logger_i.Logger
}

func NewOpenAIEmbedder(apikey string, modelName string) embedding.Embedder {
	return &client{
		openai: openai.NewClient(option.WithAPIKey(apikey)),
		model:  modelName,
		logger: logger_i.NewLogger("openai_embedding"),
	}
}

func (c *client) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := c.doCall(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	c.logger.Info("embedding document batch", "count", len(texts), "model", c.model)
	return c.doCall(ctx, texts)
}

func (c *client) doCall(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.openai.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:      openai.EmbeddingModel(c.model),
		Dimensions: openai.Int(int64(config.EmbeddingOutputDimensionality)),
	})
	if err != nil {
		c.logger.Error("openai embedding call failed", "error", err.Error())
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, errors.New("embedding response count does not match input count")
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
