// @title           Clinical Briefing API
// @version         1.0
// @description     Generates AI pre-visit briefings from patient records, grounded in clinical guideline retrieval.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ramanshrivastava/build-ai-agents/internal/agent"
	"github.com/ramanshrivastava/build-ai-agents/internal/briefing"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/data/store"
	"github.com/ramanshrivastava/build-ai-agents/internal/handlers"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB/qdrantDB"
	"github.com/ramanshrivastava/build-ai-agents/internal/server"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

var listenAddr string

func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("main")

	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	patientStore := buildPatientStore(serviceContext, logger)
	handlers.InitPatientHandlers(patientStore)

	vectorStore, err := qdrantDB.NewStore()
	if err != nil {
		logger.Error("vector store client failed to initialize, shutting down", "error", err)
		return
	}
	defer vectorStore.Close()

	// Guideline search runs in the cmd/mcp process the generation engine
	// spawns; the API only probes the vector store for mode selection.
	engine := agent.NewCLIEngine(config.AgentBinary)
	briefingService := briefing.NewService(engine, vectorStore)
	handlers.InitBriefingHandler(briefingService)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("server stopped")
}

// buildPatientStore prefers redis, falls back to the seeded in-memory panel.
// A reachable but empty redis gets the seed panel loaded into it.
func buildPatientStore(ctx context.Context, logger *logger_i.Logger) store.PatientStore {
	redisStore := store.GetRedisPatientStore(ctx)
	if redisStore == nil {
		logger.Warn("redis is offline, using in-memory patient store")
		return store.NewInMemoryPatientStore(store.SeedPatients())
	}

	existing, err := redisStore.ListPatients(ctx)
	if err == nil && len(existing) == 0 {
		for _, p := range store.SeedPatients() {
			if err := redisStore.SavePatient(ctx, p); err != nil {
				logger.Error("seeding patient failed", "patientId", p.ID, "error", err)
			}
		}
		logger.Info("seeded patient panel into redis")
	}
	return redisStore
}

