package patientModel

import (
	"encoding/json"
	"time"
)

// Patient is the clinical record a briefing is generated from. It is owned
// by the record store; the orchestrator only reads it.
type Patient struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	DateOfBirth string       `json:"date_of_birth"` //ISO date
	Gender      string       `json:"gender"`
	Conditions  []string     `json:"conditions"`
	Medications []Medication `json:"medications"`
	Labs        []LabResult  `json:"labs"`
	Allergies   []string     `json:"allergies"`
	Visits      []Visit      `json:"visits"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type LabResult struct {
	Name           string         `json:"name"`
	Value          float64        `json:"value"`
	Unit           string         `json:"unit"`
	Date           string         `json:"date"`
	ReferenceRange ReferenceRange `json:"reference_range"`
}

type ReferenceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Visit struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// PromptPayload renders the record as the JSON document handed to the
// generation engine. Store bookkeeping fields are left out.
func (p Patient) PromptPayload() (string, error) {
	view := struct {
		Name        string       `json:"name"`
		DateOfBirth string       `json:"date_of_birth"`
		Gender      string       `json:"gender"`
		Conditions  []string     `json:"conditions"`
		Medications []Medication `json:"medications"`
		Labs        []LabResult  `json:"labs"`
		Allergies   []string     `json:"allergies"`
		Visits      []Visit      `json:"visits"`
	}{
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Conditions:  p.Conditions,
		Medications: p.Medications,
		Labs:        p.Labs,
		Allergies:   p.Allergies,
		Visits:      p.Visits,
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
