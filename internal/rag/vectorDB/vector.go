package vectorDB

import (
	"context"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
)

// ScoredChunk is a raw vector-store hit before citation numbering.
type ScoredChunk struct {
	Chunk ragModel.DocumentChunk
	Score float32
}

// Store is the contract the retrieval service and the orchestrator's
// liveness probe consume. Implementations must be safe for concurrent use.
type Store interface {
	// EnsureCollection creates the collection if absent. Idempotent.
	EnsureCollection(ctx context.Context, name string) error

	// UpsertChunks writes chunks with their vectors. Point identity is
	// derived from (document_id, chunk_index), so re-ingesting the same
	// document overwrites rather than duplicates.
	UpsertChunks(ctx context.Context, name string, chunks []ragModel.DocumentChunk, vectors [][]float32) error

	// Query returns up to limit nearest neighbours scoring at or above
	// threshold, ordered by descending score. specialty == "" means no
	// filter.
	Query(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]ScoredChunk, error)

	// ListCollections doubles as the liveness probe.
	ListCollections(ctx context.Context) ([]string, error)

	Close() error
}
