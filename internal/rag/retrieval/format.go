package retrieval

import (
	"fmt"
	"strings"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
)

// NoResultsMarker is rendered when a search finds nothing above threshold,
// so the agent can state explicitly that no evidence was found rather than
// receiving an empty block.
const NoResultsMarker = "<clinical_guidelines>No relevant guidelines found.</clinical_guidelines>"

// FormatSources renders retrieval results as the XML block fed back to the
// generation engine. Each entry carries the source_id the agent uses in
// citations.
func FormatSources(results []ragModel.RetrievalResult) string {
	if len(results) == 0 {
		return NoResultsMarker
	}

	lines := []string{"<clinical_guidelines>"}
	for _, r := range results {
		lines = append(lines, fmt.Sprintf(`  <source id="%d" document="%s" section="%s" score="%.2f">`,
			r.SourceID, r.Chunk.DocumentTitle, r.Chunk.SectionPath, r.Score))
		lines = append(lines, "    "+r.Chunk.Text)
		lines = append(lines, "  </source>")
	}
	lines = append(lines, "</clinical_guidelines>")
	return strings.Join(lines, "\n")
}
