package briefing

import (
	"github.com/ramanshrivastava/build-ai-agents/internal/agent"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/briefingModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/retrieval"
)

const (
	ModeRAG      = "rag"
	ModeFallback = "fallback"
)

// ModeConfig pins down everything that differs between the two generation
// modes. selectMode is the only place the split is decided; the rest of the
// orchestrator is mode-agnostic.
type ModeConfig struct {
	Name    string
	Options agent.Options
}

func selectMode(ragAvailable bool) ModeConfig {
	if ragAvailable {
		return ModeConfig{
			Name: ModeRAG,
			Options: agent.Options{
				SystemPrompt: ragSystemPrompt,
				Model:        config.AgentModel,
				MaxTurns:     config.RAGMaxTurns,
				OutputSchema: briefingModel.OutputSchema(),
				AllowedTools: []string{retrieval.QualifiedSearchToolName},
				MCPServers: map[string]agent.MCPServerConfig{
					"briefing": {Command: config.MCPServerBinary()},
				},
			},
		}
	}
	return ModeConfig{
		Name: ModeFallback,
		Options: agent.Options{
			SystemPrompt: fallbackSystemPrompt,
			Model:        config.AgentModel,
			MaxTurns:     config.FallbackMaxTurns,
			OutputSchema: briefingModel.OutputSchema(),
		},
	}
}
