package googleEmbedding

import (
	"context"
	"errors"
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
	"google.golang.org/genai"
)

const (
	taskTypeQuery    = "RETRIEVAL_QUERY"
	taskTypeDocument = "RETRIEVAL_DOCUMENT"
)

var dimension int32 = config.EmbeddingOutputDimensionality

type client struct {
	genAi  *genai.Client
	model  string
	logger *logger_i.Logger
}

// NewGoogleEmbedder builds an Embedder backed by the Gemini embedding API.
func NewGoogleEmbedder(ctx context.Context, modelName string, apikey string) (embedding.Embedder, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		return nil, err
	}
	return &client{
		genAi:  c,
		model:  modelName,
		logger: logger_i.NewLogger("google_embedding"),
	}, nil
}

func (c *client) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	log.Debug("embedding query", "chars", len(query))

	result, err := c.doCall(ctx, genai.Text(query), taskTypeQuery)
	if err != nil {
		log.Error("query embedding failed", "error", err.Error())
		return nil, err
	}
	if len(result.Embeddings) == 0 {
		return nil, errors.New("embedding response carried no vectors")
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	log.Info("embedding document batch", "count", len(texts), "model", c.model)

	result, err := c.doCall(ctx, getContent(texts), taskTypeDocument)
	if err != nil {
		if isRateLimited(err, log) {
			log.Debug("retrying batch in 5 seconds")
			time.Sleep(5 * time.Second)
			result, err = c.doCall(ctx, getContent(texts), taskTypeDocument)
		}
		if err != nil {
			log.Error("batch embedding failed", "error", err.Error())
			return nil, err
		}
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, e := range result.Embeddings {
		vectors = append(vectors, e.Values)
	}
	if len(vectors) != len(texts) {
		return nil, errors.New("embedding response count does not match input count")
	}
	return vectors, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content, taskType string) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             taskType,
	})
}
