package embedding

import "context"

// Embedder maps text to fixed-length vectors. Query and document embeddings
// use distinct task modes so the two sides of the retrieval match.
type Embedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
