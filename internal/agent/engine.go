package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// MCPServerConfig tells the engine how to spawn a tool server.
type MCPServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Options configures a single engine run. The RAG/fallback mode split is
// expressed entirely through two Options values; see internal/briefing.
type Options struct {
	SystemPrompt string
	Model        string
	MaxTurns     int
	OutputSchema json.RawMessage
	AllowedTools []string
	MCPServers   map[string]MCPServerConfig
}

// Stream yields protocol messages in arrival order. Next blocks until the
// next message, returns io.EOF when the engine finished cleanly, or a typed
// transport error (ConnectionError, ProcessError, DecodeError).
type Stream interface {
	Next(ctx context.Context) (Message, error)
	Close() error
}

// Engine starts a generation run for one input payload.
type Engine interface {
	Query(ctx context.Context, prompt string, opts Options) (Stream, error)
}

// ErrCLINotFound means the engine's runtime binary is not installed.
var ErrCLINotFound = errors.New("claude CLI not found in PATH")

// ConnectionError is a transport failure to or from the engine process.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("agent transport failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ProcessError means the engine process terminated abnormally.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("agent process exited with code %d: %s", e.ExitCode, e.Stderr)
}

// DecodeError means a protocol line could not be parsed.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed protocol message %q: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
