package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Minute //briefing generation holds the request open
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//vectorDB
	GuidelineCollection     = "clinical_guidelines"
	QdrantHost              = "localhost"
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false
	QdrantPoolSize          = 1
	QdrantConnectionTimeout = 30 * time.Second

	//retrieval
	ScoreThreshold     float32 = 0.5
	DefaultSearchLimit         = 5
	MaxSearchLimit             = 20

	//embeddings
	EmbeddingOutputDimensionality int32 = 768
	GoogleEmbeddingModel                = "gemini-embedding-001"
	OpenAIEmbeddingModel                = "text-embedding-3-small"

	//chunking
	MaxChunkTokens = 800

	//agent
	AgentModel       = "claude-sonnet-4-5"
	AgentBinary      = "claude"
	RAGMaxTurns      = 4
	FallbackMaxTurns = 2
	ProbeTimeout     = 2 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	RedisPatientStore    = 0
	RedisPatientStoreTTL = 0 //patient records do not expire
)

// EmbeddingProvider selects which embedder backs the retrieval service.
// "google" is the default; "openai" switches to the OpenAI embeddings API.
func EmbeddingProvider() string {
	if p := os.Getenv("EMBEDDING_PROVIDER"); p != "" {
		return p
	}
	return "google"
}

func GoogleAPIKey() string {
	return os.Getenv("GOOGLE_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// AuthToken guards the API when set. Empty disables auth for local runs.
func AuthToken() string {
	return os.Getenv("BRIEFING_AUTH_TOKEN")
}

// MCPServerBinary is the path to the cmd/mcp binary the Claude CLI spawns
// for guideline search in RAG mode.
func MCPServerBinary() string {
	if p := os.Getenv("BRIEFING_MCP_BIN"); p != "" {
		return p
	}
	return "briefing-mcp"
}
