package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
)

type mockStore struct {
	OnQuery func(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error)
}

func (m *mockStore) EnsureCollection(ctx context.Context, name string) error { return nil }
func (m *mockStore) UpsertChunks(ctx context.Context, name string, chunks []ragModel.DocumentChunk, vectors [][]float32) error {
	return nil
}
func (m *mockStore) Query(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
	return m.OnQuery(ctx, name, vector, specialty, limit, threshold)
}
func (m *mockStore) ListCollections(ctx context.Context) ([]string, error) { return nil, nil }
func (m *mockStore) Close() error                                          { return nil }

type mockEmbedder struct {
	OnEmbedQuery func(ctx context.Context, query string) ([]float32, error)
}

func (m *mockEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return m.OnEmbedQuery(ctx, query)
}
func (m *mockEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("not used")
}

func chunk(title string) ragModel.DocumentChunk {
	return ragModel.DocumentChunk{Text: "body", DocumentID: "doc", DocumentTitle: title}
}

func TestSearch_NumbersSourcesByRank(t *testing.T) {
	store := &mockStore{
		OnQuery: func(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
			if name != config.GuidelineCollection {
				t.Errorf("collection got %q", name)
			}
			if threshold != config.ScoreThreshold {
				t.Errorf("threshold got %v", threshold)
			}
			return []vectorDB.ScoredChunk{
				{Chunk: chunk("A"), Score: 0.91},
				{Chunk: chunk("B"), Score: 0.77},
				{Chunk: chunk("C"), Score: 0.62},
			}, nil
		},
	}
	em := &mockEmbedder{
		OnEmbedQuery: func(ctx context.Context, query string) ([]float32, error) {
			return []float32{0.1, 0.2}, nil
		},
	}

	results, err := NewService(store, em).Search(context.Background(), "metformin", "", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.SourceID != i+1 {
			t.Errorf("result %d sourceId got %d", i, r.SourceID)
		}
	}
	if results[0].Chunk.DocumentTitle != "A" || results[2].Chunk.DocumentTitle != "C" {
		t.Error("store order not preserved")
	}
}

func TestSearch_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit uint64
	}{
		{"Zero_Uses_Default", 0, config.DefaultSearchLimit},
		{"Negative_Uses_Default", -3, config.DefaultSearchLimit},
		{"Above_Max_Clamped", 500, config.MaxSearchLimit},
		{"In_Range_Passed_Through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit uint64
			store := &mockStore{
				OnQuery: func(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			em := &mockEmbedder{
				OnEmbedQuery: func(ctx context.Context, query string) ([]float32, error) {
					return []float32{0.1}, nil
				},
			}

			if _, err := NewService(store, em).Search(context.Background(), "q", "", tt.limit); err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("limit got %d, want %d", gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	store := &mockStore{
		OnQuery: func(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
			return nil, nil
		},
	}
	em := &mockEmbedder{
		OnEmbedQuery: func(ctx context.Context, query string) ([]float32, error) {
			return []float32{0.1}, nil
		},
	}

	results, err := NewService(store, em).Search(context.Background(), "rare condition", "", 5)
	if err != nil {
		t.Fatalf("empty search must not fail: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results", len(results))
	}
}

func TestSearch_EmbeddingFailurePropagates(t *testing.T) {
	em := &mockEmbedder{
		OnEmbedQuery: func(ctx context.Context, query string) ([]float32, error) {
			return nil, errors.New("quota exhausted")
		},
	}
	store := &mockStore{
		OnQuery: func(ctx context.Context, name string, vector []float32, specialty string, limit uint64, threshold float32) ([]vectorDB.ScoredChunk, error) {
			t.Fatal("store must not be queried when embedding fails")
			return nil, nil
		},
	}

	if _, err := NewService(store, em).Search(context.Background(), "q", "", 5); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunSearchTool_ErrorsBecomeToolContent(t *testing.T) {
	em := &mockEmbedder{
		OnEmbedQuery: func(ctx context.Context, query string) ([]float32, error) {
			return nil, errors.New("backend down")
		},
	}
	svc := NewService(&mockStore{}, em)

	content, isError := RunSearchTool(context.Background(), svc, SearchToolInput{Query: "q"})
	if !isError {
		t.Error("isError not set")
	}
	if !strings.Contains(content, "Error searching guidelines") {
		t.Errorf("content got %q", content)
	}
}

func TestFormatSources(t *testing.T) {
	t.Run("Empty_Returns_Marker", func(t *testing.T) {
		if got := FormatSources(nil); got != NoResultsMarker {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Results_Render_With_Ids", func(t *testing.T) {
		results := []ragModel.RetrievalResult{
			{
				Chunk: ragModel.DocumentChunk{
					Text:          "Metformin is contraindicated below eGFR 30.",
					DocumentTitle: "ADA Standards of Care",
					SectionPath:   "Pharmacologic Therapy > Metformin",
				},
				Score:    0.87,
				SourceID: 1,
			},
		}
		out := FormatSources(results)

		for _, want := range []string{
			"<clinical_guidelines>",
			`<source id="1" document="ADA Standards of Care" section="Pharmacologic Therapy > Metformin" score="0.87">`,
			"Metformin is contraindicated below eGFR 30.",
			"</clinical_guidelines>",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}
