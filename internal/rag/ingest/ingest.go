package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/metrics"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/chunker"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/parser"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

const embedBatchSize = 100

var extractLogger = logger_i.NewLogger("Document Extraction")

// Pipeline turns guideline documents into indexed, filterable vector points.
type Pipeline struct {
	embedder embedding.Embedder
	vectorDB vectorDB.Store
	logger   *logger_i.Logger
}

func NewPipeline(em embedding.Embedder, store vectorDB.Store) *Pipeline {
	return &Pipeline{
		embedder: em,
		vectorDB: store,
		logger:   logger_i.NewLogger("Document Ingestion"),
	}
}

// IngestFile parses, chunks, embeds and upserts one document. Point identity
// comes from (document_id, chunk_index), so re-running over the same file
// replaces its points instead of duplicating them. Returns the chunk count.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (int, error) {
	log := p.logger.With("file", filepath.Base(path))

	docType := getDocType(path)
	if docType == typeErr {
		return 0, fmt.Errorf("unsupported file type: %s", path)
	}

	if err := p.vectorDB.EnsureCollection(ctx, config.GuidelineCollection); err != nil {
		return 0, fmt.Errorf("ensure collection: %w", err)
	}

	text, err := extractText(path, docType)
	if err != nil {
		return 0, err
	}

	meta := lookupMetadata(path)
	sections := parser.ParseMarkdown(text)
	chunks := chunker.ChunkSections(sections, config.MaxChunkTokens, meta)
	log.Info("document chunked", "docId", meta.DocumentID, "sections", len(sections), "chunks", len(chunks))

	if len(chunks) == 0 {
		return 0, nil
	}

	for i := 0; i < len(chunks); i += embedBatchSize {
		end := i + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[i:end]

		texts := make([]string, 0, len(batch))
		for _, c := range batch {
			texts = append(texts, c.Text)
		}

		vectors, err := p.executeEmbedBatch(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("embedding batch failed: %w", err)
		}

		if err := p.vectorDB.UpsertChunks(ctx, config.GuidelineCollection, batch, vectors); err != nil {
			return 0, fmt.Errorf("upserting batch failed: %w", err)
		}
		log.Debug("batch upserted", "from", i, "to", end)
	}

	return len(chunks), nil
}

// IngestDirectory ingests every supported file directly under dir.
func (p *Pipeline) IngestDirectory(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read directory: %w", err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if getDocType(path) == typeErr {
			p.logger.Debug("skipping unsupported file", "file", entry.Name())
			continue
		}

		count, err := p.IngestFile(ctx, path)
		if err != nil {
			return total, fmt.Errorf("ingest %s: %w", entry.Name(), err)
		}
		total += count
	}
	return total, nil
}

func (p *Pipeline) executeEmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_embedding", time.Since(start)) }()

	return p.embedder.EmbedDocuments(ctx, texts)
}
