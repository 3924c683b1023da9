package retrieval

import (
	"context"
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/metrics"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

// Service answers free-text guideline queries with scored, citation-numbered
// results. Implementations are stateless and safe to call from concurrent
// briefing requests.
type Service interface {
	Search(ctx context.Context, query string, specialty string, limit int) ([]ragModel.RetrievalResult, error)
}

type service struct {
	vectorDB   vectorDB.Store
	embedder   embedding.Embedder
	collection string
	logger     *logger_i.Logger
}

func NewService(store vectorDB.Store, em embedding.Embedder) Service {
	return &service{
		vectorDB:   store,
		embedder:   em,
		collection: config.GuidelineCollection,
		logger:     logger_i.NewLogger("Retrieval Service"),
	}
}

// Search embeds the query, runs a filtered nearest-neighbour lookup and
// numbers the hits 1..K by descending score. The store applies the relevance
// threshold, so an empty slice is a valid outcome, not an error.
func (s *service) Search(ctx context.Context, query string, specialty string, limit int) ([]ragModel.RetrievalResult, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	log.Info("guideline search", "query", query, "specialty", specialty, "limit", limit)

	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}
	if limit > config.MaxSearchLimit {
		limit = config.MaxSearchLimit
	}

	vector, err := s.executeEmbeddingStep(ctx, query)
	if err != nil {
		log.Error("query embedding failed", "error", err)
		return nil, err
	}

	hits, err := s.executeVectorSearchStep(ctx, vector, specialty, limit)
	if err != nil {
		log.Error("vector search failed", "error", err)
		return nil, err
	}

	results := make([]ragModel.RetrievalResult, 0, len(hits))
	for idx, hit := range hits {
		results = append(results, ragModel.RetrievalResult{
			Chunk:    hit.Chunk,
			Score:    hit.Score,
			SourceID: idx + 1,
		})
	}

	log.Info("guideline search complete", "results", len(results))
	for _, r := range results {
		log.Debug("result", "sourceId", r.SourceID, "score", r.Score, "doc", r.Chunk.DocumentTitle, "section", r.Chunk.SectionPath)
	}
	return results, nil
}

func (s *service) executeEmbeddingStep(ctx context.Context, query string) ([]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.EmbedQuery(ctx, query)
}

func (s *service) executeVectorSearchStep(ctx context.Context, vector []float32, specialty string, limit int) ([]vectorDB.ScoredChunk, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return s.vectorDB.Query(ctx, s.collection, vector, specialty, uint64(limit), config.ScoreThreshold)
}
