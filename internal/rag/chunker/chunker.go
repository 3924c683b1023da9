package chunker

import (
	"regexp"
	"strings"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
)

var paragraphSplit = regexp.MustCompile(`\n\n+`)

// DocumentMeta carries the per-document metadata stamped onto every chunk.
type DocumentMeta struct {
	DocumentID      string
	DocumentTitle   string
	Specialty       string
	DocumentType    string
	Conditions      []string
	Drugs           []string
	PublicationDate string
}

// ChunkSections converts parsed sections into DocumentChunks. Each chunk's
// text is prefixed with its rendered section path so the embedding keeps the
// heading context. Sections whose estimated size exceeds maxTokens are split
// at blank-line paragraph boundaries; a paragraph is never split, so a single
// oversized paragraph may exceed the budget on its own.
//
// ChunkIndex is assigned 0..N-1 in emission order and TotalChunks is set to N
// on every chunk. Sections with empty bodies produce no chunk.
func ChunkSections(sections []ragModel.Section, maxTokens int, meta DocumentMeta) []ragModel.DocumentChunk {
	type rawChunk struct {
		sectionPath string
		text        string
	}
	var raw []rawChunk

	for _, section := range sections {
		if section.Body == "" {
			continue
		}

		sectionPath := renderPath(section.Path)
		prefix := ""
		if sectionPath != "" {
			prefix = "[" + sectionPath + "] "
		}

		fullText := prefix + section.Body
		if EstimateTokens(fullText) <= maxTokens {
			raw = append(raw, rawChunk{sectionPath, fullText})
			continue
		}

		paragraphs := paragraphSplit.Split(section.Body, -1)
		var parts []string
		size := EstimateTokens(prefix)

		for _, para := range paragraphs {
			paraTokens := EstimateTokens(para)
			if size+paraTokens > maxTokens && len(parts) > 0 {
				raw = append(raw, rawChunk{sectionPath, prefix + strings.Join(parts, "\n\n")})
				parts = nil
				size = EstimateTokens(prefix)
			}
			parts = append(parts, para)
			size += paraTokens
		}

		if len(parts) > 0 {
			raw = append(raw, rawChunk{sectionPath, prefix + strings.Join(parts, "\n\n")})
		}
	}

	total := len(raw)
	chunks := make([]ragModel.DocumentChunk, 0, total)
	for idx, rc := range raw {
		chunks = append(chunks, ragModel.DocumentChunk{
			Text:            rc.text,
			DocumentID:      meta.DocumentID,
			DocumentTitle:   meta.DocumentTitle,
			SectionPath:     rc.sectionPath,
			Specialty:       meta.Specialty,
			DocumentType:    meta.DocumentType,
			Conditions:      meta.Conditions,
			Drugs:           meta.Drugs,
			PublicationDate: meta.PublicationDate,
			ChunkIndex:      idx,
			TotalChunks:     total,
		})
	}
	return chunks
}

// renderPath joins the non-empty path segments, e.g.
// "Diabetes Management > Pharmacologic Therapy > Metformin".
func renderPath(path []string) string {
	var parts []string
	for _, p := range path {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " > ")
}
