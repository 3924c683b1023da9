package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB/qdrantDB"
)

type captureStore struct {
	ensured  []string
	upserted []ragModel.DocumentChunk
	vectors  [][]float32
}

func (s *captureStore) EnsureCollection(ctx context.Context, name string) error {
	s.ensured = append(s.ensured, name)
	return nil
}
func (s *captureStore) UpsertChunks(ctx context.Context, name string, chunks []ragModel.DocumentChunk, vectors [][]float32) error {
	s.upserted = append(s.upserted, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}
func (s *captureStore) Query(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
	return nil, nil
}
func (s *captureStore) ListCollections(ctx context.Context) ([]string, error) { return nil, nil }
func (s *captureStore) Close() error                                          { return nil }

type stubEmbedder struct {
	failDocs bool
}

func (e *stubEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return []float32{0.1}, nil
}
func (e *stubEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if e.failDocs {
		return nil, errors.New("embedding backend down")
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i)}
	}
	return vectors, nil
}

func writeTempDoc(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const fixtureMarkdown = `# Diabetes Management

## Metformin

First-line agent for type 2 diabetes. Contraindicated below eGFR 30.

## Insulin

Titrate basal insulin to fasting glucose targets.
`

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path string
		want docType
	}{
		{"guideline.md", typeMarkdown},
		{"guideline.MD", typeMarkdown},
		{"report.pdf", typePDF},
		{"notes.docx", typeDocx},
		{"notes.txt", typeDocx},
		{"image.png", typeErr},
	}
	for _, tt := range tests {
		if got := getDocType(tt.path); got != tt.want {
			t.Errorf("getDocType(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLookupMetadata(t *testing.T) {
	t.Run("Registered_Document", func(t *testing.T) {
		meta := lookupMetadata("/data/guidelines/diabetes_management.md")
		if meta.DocumentID != "diabetes_management" {
			t.Errorf("docId got %q", meta.DocumentID)
		}
		if meta.Specialty != "endocrinology" {
			t.Errorf("specialty got %q", meta.Specialty)
		}
		if len(meta.Drugs) == 0 {
			t.Error("drug filters missing")
		}
	})

	t.Run("Unregistered_Document_Gets_Filename_Identity", func(t *testing.T) {
		meta := lookupMetadata("/tmp/local_protocol.md")
		if meta.DocumentID != "local_protocol" {
			t.Errorf("docId got %q", meta.DocumentID)
		}
		if meta.DocumentTitle != "local protocol" {
			t.Errorf("title got %q", meta.DocumentTitle)
		}
	})
}

func TestIngestFile_MarkdownEndToEnd(t *testing.T) {
	path := writeTempDoc(t, "diabetes_management.md", fixtureMarkdown)
	store := &captureStore{}

	count, err := NewPipeline(&stubEmbedder{}, store).IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestFile failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("chunk count got %d, want 2", count)
	}
	if len(store.ensured) != 1 {
		t.Errorf("collection not ensured: %v", store.ensured)
	}
	if len(store.upserted) != len(store.vectors) {
		t.Fatalf("chunk/vector mismatch: %d vs %d", len(store.upserted), len(store.vectors))
	}

	first := store.upserted[0]
	if first.DocumentID != "diabetes_management" {
		t.Errorf("docId got %q", first.DocumentID)
	}
	if !strings.HasPrefix(first.Text, "[Diabetes Management > Metformin] ") {
		t.Errorf("section path prefix missing: %q", first.Text)
	}
	for i, c := range store.upserted {
		if c.ChunkIndex != i || c.TotalChunks != 2 {
			t.Errorf("chunk %d indexing got (%d, %d)", i, c.ChunkIndex, c.TotalChunks)
		}
	}
}

func TestIngestFile_ReingestWritesSamePointIDs(t *testing.T) {
	path := writeTempDoc(t, "diabetes_management.md", fixtureMarkdown)
	store := &captureStore{}
	pipeline := NewPipeline(&stubEmbedder{}, store)

	if _, err := pipeline.IngestFile(context.Background(), path); err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}
	firstIDs := pointIDs(store.upserted)
	store.upserted = nil

	if _, err := pipeline.IngestFile(context.Background(), path); err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}
	secondIDs := pointIDs(store.upserted)

	if len(firstIDs) != len(secondIDs) {
		t.Fatalf("run sizes differ: %d vs %d", len(firstIDs), len(secondIDs))
	}
	for id := range firstIDs {
		if !secondIDs[id] {
			t.Errorf("re-ingest produced a new point id for %s", id)
		}
	}
}

// pointIDs maps chunks to the ids the vector store would write them under.
func pointIDs(chunks []ragModel.DocumentChunk) map[string]bool {
	ids := make(map[string]bool, len(chunks))
	for _, c := range chunks {
		ids[qdrantDB.ChunkPointID(c.DocumentID, c.ChunkIndex)] = true
	}
	return ids
}

func TestIngestFile_UnsupportedType(t *testing.T) {
	if _, err := NewPipeline(&stubEmbedder{}, &captureStore{}).IngestFile(context.Background(), "scan.png"); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestIngestFile_EmbeddingFailureAborts(t *testing.T) {
	path := writeTempDoc(t, "doc.md", fixtureMarkdown)
	store := &captureStore{}

	_, err := NewPipeline(&stubEmbedder{failDocs: true}, store).IngestFile(context.Background(), path)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.upserted) != 0 {
		t.Error("chunks upserted despite embedding failure")
	}
}

func TestIngestDirectory_SkipsUnsupported(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.md":      "# A\n\nbody a\n",
		"b.md":      "# B\n\nbody b\n",
		"skip.json": "{}",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	store := &captureStore{}
	count, err := NewPipeline(&stubEmbedder{}, store).IngestDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("IngestDirectory failed: %v", err)
	}
	if count != 2 {
		t.Errorf("chunk count got %d, want 2", count)
	}
}
