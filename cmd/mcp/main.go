// briefing-mcp is the stdio MCP server the generation engine spawns in RAG
// mode. It exposes the guideline search tool over the engine's own vector
// store and embedder, so tool calls never route back through the API process.
package main

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding/googleEmbedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding/openaiEmbedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/retrieval"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB/qdrantDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("mcp")

	ctx := context.Background()

	vectorStore, err := qdrantDB.NewStore()
	if err != nil {
		logger.Error("vector store client failed to initialize", "error", err)
		os.Exit(1)
	}
	defer vectorStore.Close()

	embedder := buildEmbedder(ctx, logger)
	if embedder == nil {
		os.Exit(1)
	}

	searchService := retrieval.NewService(vectorStore, embedder)

	server := mcp.NewServer(&mcp.Implementation{Name: "briefing", Version: "1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        retrieval.SearchToolName,
		Description: retrieval.SearchToolDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input retrieval.SearchToolInput) (*mcp.CallToolResult, any, error) {
		content, isError := retrieval.RunSearchTool(ctx, searchService, input)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: content}},
			IsError: isError,
		}, nil, nil
	})

	logger.Info("mcp server started", "tool", retrieval.SearchToolName)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("mcp server stopped", "error", err)
		os.Exit(1)
	}
}

func buildEmbedder(ctx context.Context, logger *logger_i.Logger) embedding.Embedder {
	switch provider := config.EmbeddingProvider(); provider {
	case "openai":
		return openaiEmbedding.NewOpenAIEmbedder(config.OpenAIAPIKey(), config.OpenAIEmbeddingModel)
	case "google":
		embedder, err := googleEmbedding.NewGoogleEmbedder(ctx, config.GoogleEmbeddingModel, config.GoogleAPIKey())
		if err != nil {
			logger.Error("google embedder failed to initialize", "error", err)
			return nil
		}
		return embedder
	default:
		logger.Error("unknown embedding provider", "provider", provider)
		return nil
	}
}
