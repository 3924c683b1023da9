package ragModel

// Section is a heading-delimited region of a guideline document produced by
// the structural parser. Path holds the full heading lineage from the root
// down to this section; skipped heading levels appear as empty strings so the
// depth of the slice always matches the nesting level.
type Section struct {
	Heading string
	Level   int
	Body    string
	Path    []string
}

// DocumentChunk is a retrieval-sized unit of guideline text with the metadata
// persisted alongside its vector.
type DocumentChunk struct {
	Text            string   `json:"text"`
	DocumentID      string   `json:"document_id"`
	DocumentTitle   string   `json:"document_title"`
	SectionPath     string   `json:"section_path"`
	Specialty       string   `json:"specialty"`
	DocumentType    string   `json:"document_type"`
	Conditions      []string `json:"conditions"`
	Drugs           []string `json:"drugs"`
	PublicationDate string   `json:"publication_date"` //ISO date
	ChunkIndex      int      `json:"chunk_index"`
	TotalChunks     int      `json:"total_chunks"`
}

// RetrievalResult is one scored hit from the vector store. SourceID is the
// dense 1-based citation number; it is only stable within a single search
// response.
type RetrievalResult struct {
	Chunk    DocumentChunk `json:"chunk"`
	Score    float32       `json:"score"`
	SourceID int           `json:"source_id"`
}
