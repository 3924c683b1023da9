package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ramanshrivastava/build-ai-agents/internal/adapter"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logRH.Error("error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, apiCode string, message string) {
	writeJsonResponse(w, httpCode, adapter.ToErrorResponse(apiCode, message))
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}
