package agent

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeLine_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, msgs []Message)
	}{
		{
			name: "Assistant_Text_And_ToolUse",
			line: `{"type":"assistant","message":{"model":"claude-sonnet-4-5","content":[` +
				`{"type":"text","text":"Checking guidelines."},` +
				`{"type":"tool_use","id":"tu_1","name":"mcp__briefing__search_clinical_guidelines","input":{"query":"metformin renal dosing"}}]}}`,
			check: func(t *testing.T, msgs []Message) {
				if len(msgs) != 1 {
					t.Fatalf("got %d messages, want 1", len(msgs))
				}
				am, ok := msgs[0].(AssistantMessage)
				if !ok {
					t.Fatalf("got %T, want AssistantMessage", msgs[0])
				}
				if am.Model != "claude-sonnet-4-5" {
					t.Errorf("model got %q", am.Model)
				}
				if len(am.Content) != 2 {
					t.Fatalf("got %d blocks, want 2", len(am.Content))
				}
				if _, ok := am.Content[0].(TextBlock); !ok {
					t.Errorf("block 0 is %T, want TextBlock", am.Content[0])
				}
				tu, ok := am.Content[1].(ToolUseBlock)
				if !ok {
					t.Fatalf("block 1 is %T, want ToolUseBlock", am.Content[1])
				}
				if tu.Name != "mcp__briefing__search_clinical_guidelines" {
					t.Errorf("tool name got %q", tu.Name)
				}
			},
		},
		{
			name: "User_ToolResult_String_Content",
			line: `{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_1","content":"<clinical_guidelines>...</clinical_guidelines>","is_error":false}]}}`,
			check: func(t *testing.T, msgs []Message) {
				tr, ok := msgs[0].(ToolResultMessage)
				if !ok {
					t.Fatalf("got %T, want ToolResultMessage", msgs[0])
				}
				if tr.ToolUseID != "tu_1" || tr.IsError {
					t.Errorf("got %+v", tr)
				}
				if !strings.Contains(tr.Content, "clinical_guidelines") {
					t.Errorf("content got %q", tr.Content)
				}
			},
		},
		{
			name: "User_ToolResult_Block_List_Content",
			line: `{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_2","content":[{"type":"text","text":"part one "},{"type":"text","text":"part two"}],"is_error":true}]}}`,
			check: func(t *testing.T, msgs []Message) {
				tr := msgs[0].(ToolResultMessage)
				if tr.Content != "part one part two" {
					t.Errorf("content got %q", tr.Content)
				}
				if !tr.IsError {
					t.Error("is_error flag lost")
				}
			},
		},
		{
			name: "Result_With_Structured_Output",
			line: `{"type":"result","subtype":"success","is_error":false,"num_turns":3,"duration_ms":1200,"structured_output":{"flags":[]}}`,
			check: func(t *testing.T, msgs []Message) {
				rm, ok := msgs[0].(ResultMessage)
				if !ok {
					t.Fatalf("got %T, want ResultMessage", msgs[0])
				}
				if rm.IsError || rm.NumTurns != 3 {
					t.Errorf("got %+v", rm)
				}
				var payload map[string]json.RawMessage
				if err := json.Unmarshal(rm.StructuredOutput, &payload); err != nil {
					t.Errorf("structured output not preserved: %v", err)
				}
			},
		},
		{
			name: "Result_Error",
			line: `{"type":"result","subtype":"error_max_turns","is_error":true,"result":"max turns exceeded"}`,
			check: func(t *testing.T, msgs []Message) {
				rm := msgs[0].(ResultMessage)
				if !rm.IsError || rm.Result != "max turns exceeded" {
					t.Errorf("got %+v", rm)
				}
			},
		},
		{
			name: "System_Init",
			line: `{"type":"system","subtype":"init","session_id":"abc"}`,
			check: func(t *testing.T, msgs []Message) {
				sm, ok := msgs[0].(SystemMessage)
				if !ok {
					t.Fatalf("got %T, want SystemMessage", msgs[0])
				}
				if sm.Subtype != "init" {
					t.Errorf("subtype got %q", sm.Subtype)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := decodeLine([]byte(tt.line))
			if err != nil {
				t.Fatalf("decodeLine failed: %v", err)
			}
			tt.check(t, msgs)
		})
	}
}

func TestDecodeLine_MalformedJSON(t *testing.T) {
	_, err := decodeLine([]byte(`{"type":"assistant",`))
	if err == nil {
		t.Fatal("expected decode error")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("got %T, want *DecodeError", err)
	}
}

func TestBuildArgs_MCPConfigAndTools(t *testing.T) {
	opts := Options{
		SystemPrompt: "be helpful",
		Model:        "claude-sonnet-4-5",
		MaxTurns:     4,
		OutputSchema: json.RawMessage(`{"type":"object"}`),
		AllowedTools: []string{"mcp__briefing__search_clinical_guidelines"},
		MCPServers: map[string]MCPServerConfig{
			"briefing": {Command: "briefing-mcp"},
		},
	}

	args, err := buildArgs(opts)
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"--output-format stream-json",
		"--max-turns 4",
		"--mcp-config",
		"--allowedTools mcp__briefing__search_clinical_guidelines",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %v", want, args)
		}
	}

	// The output schema must ride inside the system prompt.
	var systemPrompt string
	for i, a := range args {
		if a == "--system-prompt" && i+1 < len(args) {
			systemPrompt = args[i+1]
		}
	}
	if !strings.Contains(systemPrompt, `{"type":"object"}`) {
		t.Error("output schema not embedded in system prompt")
	}
}

func TestBuildArgs_NoToolsNoMCPFlag(t *testing.T) {
	args, err := buildArgs(Options{Model: "m", MaxTurns: 2, SystemPrompt: "p"})
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "--mcp-config") || strings.Contains(joined, "--allowedTools") {
		t.Errorf("tool flags present without tool bindings: %v", args)
	}
}
