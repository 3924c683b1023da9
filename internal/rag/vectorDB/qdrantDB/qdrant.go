package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

var dimension = uint64(config.EmbeddingOutputDimensionality)

// Keyword payload indexes created on new collections so specialty and tag
// filters stay cheap.
var indexedFields = []string{"document_id", "specialty", "document_type", "conditions", "drugs"}

type store struct {
	qObj   *qdrant.Client
	logger *logger_i.Logger
}

// NewStore connects to Qdrant over gRPC. Host and port come from
// QDRANT_HOST/QDRANT_PORT with config defaults.
func NewStore() (vectorDB.Store, error) {
	host := os.Getenv("QDRANT_HOST")
	port, err := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if host == "" || err != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant client: %w", err)
	}

	return &store{
		qObj:   client,
		logger: logger_i.NewLogger("Qdrant"),
	}, nil
}

func (db *store) EnsureCollection(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("empty collection name")
	}

	exists, err := db.qObj.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		db.logger.Debug("collection already exists", "collection", name)
		return nil
	}

	err = db.qObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return err
	}

	for _, field := range indexedFields {
		_, err = db.qObj.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: name,
			FieldName:      field,
			FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		})
		if err != nil {
			return fmt.Errorf("payload index %s: %w", field, err)
		}
	}

	db.logger.Info("created collection", "collection", name)
	return nil
}

func (db *store) UpsertChunks(ctx context.Context, name string, chunks []ragModel.DocumentChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(ChunkPointID(chunk.DocumentID, chunk.ChunkIndex)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":             chunk.Text,
				"document_id":      chunk.DocumentID,
				"document_title":   chunk.DocumentTitle,
				"section_path":     chunk.SectionPath,
				"specialty":        chunk.Specialty,
				"document_type":    chunk.DocumentType,
				"conditions":       toAnySlice(chunk.Conditions),
				"drugs":            toAnySlice(chunk.Drugs),
				"publication_date": chunk.PublicationDate,
				"chunk_index":      int64(chunk.ChunkIndex),
				"total_chunks":     int64(chunk.TotalChunks),
			}),
		}
	}

	_, err := db.qObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: name,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	db.logger.Info("upserted chunks", "count", len(points), "collection", name)
	return nil
}

func (db *store) Query(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
	log := db.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	var filter *qdrant.Filter
	if specialty != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch("specialty", specialty)},
		}
	}

	hits, err := db.qObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: name,
		Query:          qdrant.NewQuery(vector...),
		Filter:         filter,
		ScoreThreshold: qdrant.PtrOf(threshold),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		log.Error("error querying qdrant", "error", err)
		return nil, err
	}

	results := make([]vectorDB.ScoredChunk, 0, len(hits))
	for _, hit := range hits {
		results = append(results, vectorDB.ScoredChunk{
			Chunk: chunkFromPayload(hit.Payload),
			Score: hit.Score,
		})
	}
	log.Debug("qdrant query complete", "hits", len(results), "threshold", threshold)
	return results, nil
}

func (db *store) ListCollections(ctx context.Context) ([]string, error) {
	return db.qObj.ListCollections(ctx)
}

func (db *store) Close() error {
	return db.qObj.Close()
}

// ChunkPointID derives the deterministic point ID for a chunk, so the same
// (document_id, chunk_index) always maps to the same stored point.
func ChunkPointID(documentID string, chunkIndex int) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(fmt.Sprintf("%s:%d", documentID, chunkIndex))).String()
}

func chunkFromPayload(payload map[string]*qdrant.Value) ragModel.DocumentChunk {
	return ragModel.DocumentChunk{
		Text:            payload["text"].GetStringValue(),
		DocumentID:      payload["document_id"].GetStringValue(),
		DocumentTitle:   payload["document_title"].GetStringValue(),
		SectionPath:     payload["section_path"].GetStringValue(),
		Specialty:       payload["specialty"].GetStringValue(),
		DocumentType:    payload["document_type"].GetStringValue(),
		Conditions:      toStringSlice(payload["conditions"]),
		Drugs:           toStringSlice(payload["drugs"]),
		PublicationDate: payload["publication_date"].GetStringValue(),
		ChunkIndex:      int(payload["chunk_index"].GetIntegerValue()),
		TotalChunks:     int(payload["total_chunks"].GetIntegerValue()),
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func toStringSlice(value *qdrant.Value) []string {
	list := value.GetListValue()
	if list == nil {
		return nil
	}
	out := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		out = append(out, v.GetStringValue())
	}
	return out
}
