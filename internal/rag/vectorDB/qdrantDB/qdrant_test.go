package qdrantDB

import "testing"

func TestChunkPointID_Deterministic(t *testing.T) {
	// Point identity must survive re-ingestion: the same (document_id,
	// chunk_index) always yields the same id, so upserts overwrite.
	first := ChunkPointID("diabetes_management", 0)
	second := ChunkPointID("diabetes_management", 0)
	if first != second {
		t.Fatalf("id not stable: %s vs %s", first, second)
	}

	// uuid5(NAMESPACE_DNS, "diabetes_management:0")
	if want := "a6bc0051-07f0-5144-a0e5-57e0100569e6"; first != want {
		t.Errorf("id got %s, want %s", first, want)
	}
}

func TestChunkPointID_DistinctAcrossChunksAndDocuments(t *testing.T) {
	ids := map[string]string{
		ChunkPointID("diabetes_management", 0):     "diabetes_management:0",
		ChunkPointID("diabetes_management", 1):     "diabetes_management:1",
		ChunkPointID("hypertension_management", 0): "hypertension_management:0",
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 distinct ids, got %d: %v", len(ids), ids)
	}

	if got, want := ChunkPointID("diabetes_management", 1), "8498f67e-e5ac-593e-bf6f-78e1892b9124"; got != want {
		t.Errorf("id got %s, want %s", got, want)
	}
	if got, want := ChunkPointID("hypertension_management", 0), "344e8b7f-b510-5a6d-8321-1f415f020f8e"; got != want {
		t.Errorf("id got %s, want %s", got, want)
	}
}
