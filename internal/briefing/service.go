package briefing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/agent"
	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/briefingModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/patientModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/metrics"
	"github.com/ramanshrivastava/build-ai-agents/internal/rag/vectorDB"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

// Service generates one briefing per call. Calls are independent; the service
// holds no per-request state and is safe for concurrent use.
type Service interface {
	GenerateBriefing(ctx context.Context, patient patientModel.Patient) (briefingModel.BriefingResponse, error)
}

type service struct {
	engine   agent.Engine
	vectorDB vectorDB.Store
	logger   *logger_i.Logger
}

func NewService(engine agent.Engine, store vectorDB.Store) Service {
	return &service{
		engine:   engine,
		vectorDB: store,
		logger:   logger_i.NewLogger("Briefing Service"),
	}
}

// GenerateBriefing probes the vector store, picks the generation mode from
// the probe outcome alone, runs the engine and consumes its stream until a
// validated payload or a classified failure.
func (s *service) GenerateBriefing(ctx context.Context, patient patientModel.Patient) (briefingModel.BriefingResponse, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "patientId", patient.ID)

	mode := selectMode(s.probeRAG(ctx, log))
	log.Info("briefing mode selected", "mode", mode.Name, "maxTurns", mode.Options.MaxTurns)
	metrics.IncrementBriefingMode(mode.Name)

	start := time.Now()
	resp, err := s.generate(ctx, log, patient, mode)
	metrics.CaptureBriefingMetrics(mode.Name, briefingStatus(err), time.Since(start))
	return resp, err
}

// probeRAG checks vector store liveness with a short deadline. Probe failures
// select fallback mode; they never surface to the caller.
func (s *service) probeRAG(ctx context.Context, log *logger_i.Logger) bool {
	probeCtx, cancel := context.WithTimeout(ctx, config.ProbeTimeout)
	defer cancel()

	start := time.Now()
	_, err := s.vectorDB.ListCollections(probeCtx)
	metrics.CaptureExecutionMetrics("vector_store_probe", time.Since(start))

	if err != nil {
		log.Warn("vector store probe failed, using fallback mode", "error", err)
		return false
	}
	return true
}

func (s *service) generate(ctx context.Context, log *logger_i.Logger, patient patientModel.Patient, mode ModeConfig) (briefingModel.BriefingResponse, error) {
	patientJSON, err := patient.PromptPayload()
	if err != nil {
		return briefingModel.BriefingResponse{}, newGenerationError(CodeAgentError, "serialize patient record: %v", err)
	}

	stream, err := s.engine.Query(ctx, buildPrompt(patientJSON), mode.Options)
	if err != nil {
		log.Error("engine start failed", "error", err)
		return briefingModel.BriefingResponse{}, classifyTransport(err)
	}
	defer stream.Close()

	var captured *briefingModel.PatientBriefing

	for {
		msg, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var connErr *agent.ConnectionError
			if errors.As(err, &connErr) && captured != nil {
				// Teardown race: the payload already arrived, the broken
				// pipe afterwards carries no information.
				log.Warn("connection error after result, ignoring", "error", err)
				break
			}
			log.Error("stream failed", "error", err)
			return briefingModel.BriefingResponse{}, classifyTransport(err)
		}

		switch m := msg.(type) {
		case agent.AssistantMessage:
			for _, block := range m.Content {
				switch b := block.(type) {
				case agent.TextBlock:
					log.Debug("assistant text", "chars", len(b.Text))
				case agent.ToolUseBlock:
					log.Info("assistant tool call", "tool", b.Name, "input", string(b.Input))
				}
			}
		case agent.ToolResultMessage:
			log.Info("tool result", "toolUseId", m.ToolUseID, "isError", m.IsError, "chars", len(m.Content))
		case agent.SystemMessage:
			log.Debug("system message", "subtype", m.Subtype)
		case agent.ResultMessage:
			if m.IsError {
				log.Error("generation failed", "subtype", m.Subtype, "result", m.Result)
				return briefingModel.BriefingResponse{}, newGenerationError(CodeAgentError, "generation failed (%s): %s", m.Subtype, m.Result)
			}
			payload, perr := parsePayload(m)
			if perr != nil {
				log.Error("result payload rejected", "error", perr)
				return briefingModel.BriefingResponse{}, newGenerationError(CodeJSONDecodeError, "result payload: %v", perr)
			}
			log.Info("briefing generated", "flags", len(payload.Flags), "turns", m.NumTurns, "durationMs", m.DurationMS, "costUsd", m.TotalCostUSD)
			captured = &payload
		}
	}

	if captured == nil {
		log.Error("stream ended without a result")
		return briefingModel.BriefingResponse{}, newGenerationError(CodeNoResult, "generation produced no result")
	}

	return briefingModel.BriefingResponse{
		PatientBriefing: *captured,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// classifyTransport maps engine errors onto the failure codes.
func classifyTransport(err error) *GenerationError {
	var (
		procErr   *agent.ProcessError
		decodeErr *agent.DecodeError
		connErr   *agent.ConnectionError
	)
	switch {
	case errors.Is(err, agent.ErrCLINotFound):
		return newGenerationError(CodeCLINotFound, "%v", err)
	case errors.As(err, &procErr):
		return newGenerationError(CodeProcessError, "%v", err)
	case errors.As(err, &decodeErr):
		return newGenerationError(CodeJSONDecodeError, "%v", err)
	case errors.As(err, &connErr):
		return newGenerationError(CodeCLIConnectionError, "%v", err)
	default:
		return newGenerationError(CodeCLIConnectionError, "%v", err)
	}
}

// parsePayload pulls the briefing out of a terminal message. Structured
// output wins; otherwise the result text is parsed, tolerating a markdown
// code fence around the JSON.
func parsePayload(m agent.ResultMessage) (briefingModel.PatientBriefing, error) {
	raw := []byte(strings.TrimSpace(string(m.StructuredOutput)))
	if len(raw) == 0 || string(raw) == "null" {
		raw = []byte(stripFence(m.Result))
	}

	var payload briefingModel.PatientBriefing
	if err := json.Unmarshal(raw, &payload); err != nil {
		return briefingModel.PatientBriefing{}, err
	}
	if err := payload.Validate(); err != nil {
		return briefingModel.PatientBriefing{}, err
	}
	return payload, nil
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func briefingStatus(err error) string {
	if err == nil {
		return "success"
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return "error"
}
