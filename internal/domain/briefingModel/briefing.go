package briefingModel

import (
	"encoding/json"
	"fmt"
	"time"
)

// Flag categories and severities form closed sets; anything else fails
// validation of the agent payload.
var validCategories = map[string]bool{
	"labs":        true,
	"medications": true,
	"screenings":  true,
	"ai_insight":  true,
}

var validSeverities = map[string]bool{
	"critical": true,
	"warning":  true,
	"info":     true,
}

type Flag struct {
	Category        string `json:"category"`
	Severity        string `json:"severity"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Source          string `json:"source"`
	SuggestedAction string `json:"suggested_action,omitempty"`
}

type Summary struct {
	OneLiner        string   `json:"one_liner"`
	KeyConditions   []string `json:"key_conditions"`
	RelevantHistory string   `json:"relevant_history"`
}

type SuggestedAction struct {
	Action   string `json:"action"`
	Reason   string `json:"reason"`
	Priority int    `json:"priority"` //1 = most urgent
}

// PatientBriefing is the structured payload the generation engine emits.
type PatientBriefing struct {
	Flags            []Flag            `json:"flags"`
	Summary          Summary           `json:"summary"`
	SuggestedActions []SuggestedAction `json:"suggested_actions"`
}

// BriefingResponse wraps a validated briefing with the server-side
// generation timestamp. Immutable once returned.
type BriefingResponse struct {
	PatientBriefing
	GeneratedAt time.Time `json:"generated_at"`
}

// Validate enforces the output contract on an agent payload.
func (b PatientBriefing) Validate() error {
	for i, f := range b.Flags {
		if !validCategories[f.Category] {
			return fmt.Errorf("flag %d: unknown category %q", i, f.Category)
		}
		if !validSeverities[f.Severity] {
			return fmt.Errorf("flag %d: unknown severity %q", i, f.Severity)
		}
		if f.Title == "" {
			return fmt.Errorf("flag %d: empty title", i)
		}
		if f.Source != "ai" {
			return fmt.Errorf("flag %d: source must be \"ai\", got %q", i, f.Source)
		}
	}

	if b.Summary.OneLiner == "" {
		return fmt.Errorf("summary: empty one_liner")
	}

	for i, a := range b.SuggestedActions {
		if a.Action == "" {
			return fmt.Errorf("suggested action %d: empty action", i)
		}
		if a.Priority < 1 {
			return fmt.Errorf("suggested action %d: priority %d, want >= 1", i, a.Priority)
		}
	}
	return nil
}

// OutputSchema is the JSON schema sent to the generation engine so its
// terminal payload matches PatientBriefing.
func OutputSchema() json.RawMessage {
	return json.RawMessage(outputSchemaJSON)
}

const outputSchemaJSON = `{
  "type": "object",
  "required": ["flags", "summary", "suggested_actions"],
  "properties": {
    "flags": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "severity", "title", "description", "source"],
        "properties": {
          "category": {"type": "string", "enum": ["labs", "medications", "screenings", "ai_insight"]},
          "severity": {"type": "string", "enum": ["critical", "warning", "info"]},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "source": {"type": "string", "enum": ["ai"]},
          "suggested_action": {"type": "string"}
        }
      }
    },
    "summary": {
      "type": "object",
      "required": ["one_liner", "key_conditions", "relevant_history"],
      "properties": {
        "one_liner": {"type": "string"},
        "key_conditions": {"type": "array", "items": {"type": "string"}},
        "relevant_history": {"type": "string"}
      }
    },
    "suggested_actions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["action", "reason", "priority"],
        "properties": {
          "action": {"type": "string"},
          "reason": {"type": "string"},
          "priority": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`
