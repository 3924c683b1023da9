package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"

	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

// cliEngine drives the claude CLI in stream-json mode. The prompt goes
// to stdin; each stdout line is one protocol message. Tools are served by
// MCP servers the CLI spawns itself from the inline --mcp-config.
type cliEngine struct {
	binary string
	logger *logger_i.Logger
}

func NewCLIEngine(binary string) Engine {
	return &cliEngine{
		binary: binary,
		logger: logger_i.NewLogger("AgentCLI"),
	}
}

func (e *cliEngine) Query(ctx context.Context, prompt string, opts Options) (Stream, error) {
	path, err := exec.LookPath(e.binary)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrCLINotFound
		}
		return nil, &ConnectionError{Err: err}
	}

	args, err := buildArgs(opts)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader([]byte(prompt))

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	e.logger.Debug("agent process started", "binary", path, "maxTurns", opts.MaxTurns, "tools", opts.AllowedTools)

	s := &cliStream{
		cmd:    cmd,
		stderr: stderr,
		items:  make(chan streamItem),
		done:   make(chan struct{}),
	}
	go s.readLoop(stdout)
	return s, nil
}

func buildArgs(opts Options) ([]string, error) {
	args := []string{
		"-p",
		"--verbose",
		"--output-format", "stream-json",
		"--model", opts.Model,
		"--max-turns", strconv.Itoa(opts.MaxTurns),
		"--permission-mode", "bypassPermissions",
	}

	systemPrompt := opts.SystemPrompt
	if len(opts.OutputSchema) > 0 {
		// The CLI has no schema flag; the output contract rides in the
		// system prompt and the terminal payload is validated on our side.
		systemPrompt += "\n\nOUTPUT FORMAT:\nRespond with a single JSON object matching this JSON schema exactly. " +
			"No prose outside the JSON.\n" + string(opts.OutputSchema)
	}
	args = append(args, "--system-prompt", systemPrompt)

	if len(opts.MCPServers) > 0 {
		mcpConfig, err := json.Marshal(map[string]any{"mcpServers": opts.MCPServers})
		if err != nil {
			return nil, fmt.Errorf("marshal mcp config: %w", err)
		}
		args = append(args, "--mcp-config", string(mcpConfig), "--strict-mcp-config")
	}
	for _, tool := range opts.AllowedTools {
		args = append(args, "--allowedTools", tool)
	}
	return args, nil
}

type streamItem struct {
	msg Message
	err error
}

type cliStream struct {
	cmd       *exec.Cmd
	stderr    *bytes.Buffer
	items     chan streamItem
	done      chan struct{}
	closeOnce sync.Once
}

func (s *cliStream) readLoop(stdout io.Reader) {
	defer close(s.items)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		msgs, err := decodeLine(line)
		if err != nil {
			s.send(streamItem{err: err})
			break
		}
		for _, msg := range msgs {
			if !s.send(streamItem{msg: msg}) {
				return
			}
		}
	}

	if err := scanner.Err(); err != nil {
		s.send(streamItem{err: &ConnectionError{Err: err}})
		s.cmd.Wait()
		return
	}

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.send(streamItem{err: &ProcessError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   s.stderr.String(),
			}})
			return
		}
		s.send(streamItem{err: &ConnectionError{Err: err}})
	}
}

func (s *cliStream) send(item streamItem) bool {
	select {
	case s.items <- item:
		return true
	case <-s.done:
		return false
	}
}

func (s *cliStream) Next(ctx context.Context) (Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case item, ok := <-s.items:
		if !ok {
			return nil, io.EOF
		}
		return item.msg, item.err
	}
}

func (s *cliStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.cmd.Process != nil {
			s.cmd.Process.Kill()
		}
	})
	return nil
}

// --- wire decoding ---

type wireEnvelope struct {
	Type             string          `json:"type"`
	Subtype          string          `json:"subtype"`
	Message          *wireMessage    `json:"message"`
	IsError          bool            `json:"is_error"`
	Result           string          `json:"result"`
	StructuredOutput json.RawMessage `json:"structured_output"`
	NumTurns         int             `json:"num_turns"`
	DurationMS       int64           `json:"duration_ms"`
	DurationAPIMS    int64           `json:"duration_api_ms"`
	TotalCostUSD     float64         `json:"total_cost_usd"`
	Usage            json.RawMessage `json:"usage"`
}

type wireMessage struct {
	Model   string      `json:"model"`
	Content []wireBlock `json:"content"`
}

type wireBlock struct {
	Type     string          `json:"type"`
	Text     string          `json:"text"`
	Thinking string          `json:"thinking"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Input    json.RawMessage `json:"input"`

	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
	IsError   bool            `json:"is_error"`
}

// decodeLine maps one protocol line onto the message union. A user line can
// carry several tool_result blocks, so the result is a slice.
func decodeLine(line []byte) ([]Message, error) {
	var env wireEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, &DecodeError{Line: string(line), Err: err}
	}

	switch env.Type {
	case "assistant":
		msg := AssistantMessage{}
		if env.Message != nil {
			msg.Model = env.Message.Model
			for _, b := range env.Message.Content {
				switch b.Type {
				case "text":
					msg.Content = append(msg.Content, TextBlock{Text: b.Text})
				case "thinking":
					msg.Content = append(msg.Content, ThinkingBlock{Thinking: b.Thinking})
				case "tool_use":
					msg.Content = append(msg.Content, ToolUseBlock{ID: b.ID, Name: b.Name, Input: b.Input})
				}
			}
		}
		return []Message{msg}, nil

	case "user":
		var msgs []Message
		if env.Message != nil {
			for _, b := range env.Message.Content {
				if b.Type != "tool_result" {
					continue
				}
				msgs = append(msgs, ToolResultMessage{
					ToolUseID: b.ToolUseID,
					Content:   blockContentText(b.Content),
					IsError:   b.IsError,
				})
			}
		}
		if len(msgs) == 0 {
			// A user echo without tool results is still observable.
			msgs = append(msgs, SystemMessage{Subtype: "user", Data: append(json.RawMessage{}, line...)})
		}
		return msgs, nil

	case "result":
		return []Message{ResultMessage{
			Subtype:          env.Subtype,
			IsError:          env.IsError,
			Result:           env.Result,
			StructuredOutput: env.StructuredOutput,
			NumTurns:         env.NumTurns,
			DurationMS:       env.DurationMS,
			DurationAPIMS:    env.DurationAPIMS,
			TotalCostUSD:     env.TotalCostUSD,
			Usage:            env.Usage,
		}}, nil

	default:
		// system and any future message kinds are observational
		return []Message{SystemMessage{Subtype: env.Subtype, Data: append(json.RawMessage{}, line...)}}, nil
	}
}

// blockContentText flattens tool_result content, which the protocol encodes
// either as a plain string or as a list of text blocks.
func blockContentText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var buf bytes.Buffer
		for _, b := range blocks {
			if b.Type == "text" {
				buf.WriteString(b.Text)
			}
		}
		return buf.String()
	}
	return string(raw)
}
