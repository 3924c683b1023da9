package briefing

import "fmt"

// Failure codes. Every error GenerateBriefing returns carries exactly one.
const (
	CodeAgentError         = "AGENT_ERROR"
	CodeNoResult           = "NO_RESULT"
	CodeCLINotFound        = "CLI_NOT_FOUND"
	CodeCLIConnectionError = "CLI_CONNECTION_ERROR"
	CodeProcessError       = "PROCESS_ERROR"
	CodeJSONDecodeError    = "JSON_DECODE_ERROR"
)

// GenerationError is the orchestrator's only error type. Callers branch on
// Code, not on the underlying transport error.
type GenerationError struct {
	Code    string
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newGenerationError(code string, format string, args ...any) *GenerationError {
	return &GenerationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
