package retrieval

import (
	"context"
	"fmt"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/metrics"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

const (
	// SearchToolName is the tool identifier advertised to the generation
	// engine; the fully-qualified form includes the MCP server name.
	SearchToolName          = "search_clinical_guidelines"
	QualifiedSearchToolName = "mcp__briefing__" + SearchToolName

	SearchToolDescription = "Search clinical guidelines, drug interactions, and protocols. " +
		"Returns relevant passages with source citations. Use this tool to find " +
		"evidence-based recommendations for patient conditions and medications."
)

// SearchToolInput is the argument shape of the guideline search tool.
type SearchToolInput struct {
	Query      string `json:"query" jsonschema:"Clinical search query, e.g. 'metformin renal dosing eGFR 45'"`
	Specialty  string `json:"specialty,omitempty" jsonschema:"Optional specialty filter, e.g. 'cardiology'"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of passages to return"`
}

var toolLogger = logger_i.NewLogger("SearchTool")

// RunSearchTool executes one tool invocation. Retrieval failures are turned
// into an error-content response for the engine to reason about, never an
// error that would abort the surrounding generation.
func RunSearchTool(ctx context.Context, svc Service, input SearchToolInput) (content string, isError bool) {
	toolLogger.Info("tool called", "query", input.Query, "specialty", input.Specialty, "maxResults", input.MaxResults)
	metrics.IncrementToolCalls(SearchToolName)

	limit := input.MaxResults
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}

	results, err := svc.Search(ctx, input.Query, input.Specialty, limit)
	if err != nil {
		toolLogger.Error("tool search failed", "error", err)
		return fmt.Sprintf("Error searching guidelines: %v", err), true
	}

	toolLogger.Info("tool result", "chunks", len(results))
	return FormatSources(results), false
}
