// ingest loads guideline documents into the vector store. Point identity is
// derived from document id and chunk index, so re-running it is idempotent.
//
//	ingest -file guidelines/diabetes_management.md
//	ingest -directory guidelines/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding/googleEmbedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/embedding/openaiEmbedding"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ingest"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB/qdrantDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

var (
	filePath string
	dirPath  string
)

func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("ingest")

	flag.StringVar(&filePath, "file", "", "single document to ingest")
	flag.StringVar(&dirPath, "directory", "", "directory of documents to ingest")
	flag.Parse()

	if filePath == "" && dirPath == "" {
		flag.Usage()
		os.Exit(2)
	}

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

	pipeline := ingest.NewPipeline(embedder, vectorStore)

	total := 0
	if filePath != "" {
		count, err := pipeline.IngestFile(ctx, filePath)
		if err != nil {
			logger.Error("ingestion failed", "file", filePath, "error", err)
			os.Exit(1)
		}
		total += count
	}
	if dirPath != "" {
		count, err := pipeline.IngestDirectory(ctx, dirPath)
		if err != nil {
			logger.Error("ingestion failed", "directory", dirPath, "error", err)
			os.Exit(1)
		}
		total += count
	}

	logger.Info("ingestion complete", "chunks", total)
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
