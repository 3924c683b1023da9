package agent

import "encoding/json"

// Message is the closed union of protocol messages the generation engine
// emits. Exactly one terminal ResultMessage (or stream end) closes a run.
type Message interface {
	isMessage()
}

// ContentBlock is the closed union of blocks inside an assistant message.
type ContentBlock interface {
	isContentBlock()
}

type TextBlock struct {
	Text string
}

type ThinkingBlock struct {
	Thinking string
}

// ToolUseBlock is the engine invoking one of its bound tools.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input json.RawMessage
}

func (TextBlock) isContentBlock()     {}
func (ThinkingBlock) isContentBlock() {}
func (ToolUseBlock) isContentBlock()  {}

// AssistantMessage carries the engine's visible reasoning and tool calls.
// Observational only; it never changes orchestrator state.
type AssistantMessage struct {
	Model   string
	Content []ContentBlock
}

// ToolResultMessage is tool output being fed back into the engine. Only seen
// when tools are bound.
type ToolResultMessage struct {
	ToolUseID string
	Content   string
	IsError   bool
}

// SystemMessage is engine housekeeping (init, status). Observational only.
type SystemMessage struct {
	Subtype string
	Data    json.RawMessage
}

// ResultMessage terminates the stream: either a structured payload or an
// explicit error indicator.
type ResultMessage struct {
	Subtype          string
	IsError          bool
	Result           string
	StructuredOutput json.RawMessage
	NumTurns         int
	DurationMS       int64
	DurationAPIMS    int64
	TotalCostUSD     float64
	Usage            json.RawMessage
}

func (AssistantMessage) isMessage()  {}
func (ToolResultMessage) isMessage() {}
func (SystemMessage) isMessage()     {}
func (ResultMessage) isMessage()     {}
