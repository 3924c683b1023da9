package api

import (
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/domain/briefingModel"
)

// Error codes surfaced to API clients.
const (
	CodePatientNotFound = "PATIENT_NOT_FOUND"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeRateLimited     = "RATE_LIMITED"
)

type ErrorDetail struct {
	Code    string `json:"code" example:"PATIENT_NOT_FOUND"`
	Message string `json:"message" example:"no patient with id 42"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// PatientSummary is the list-view projection of a patient record.
type PatientSummary struct {
	ID          int      `json:"id" example:"1"`
	Name        string   `json:"name" example:"Maria Garcia"`
	DateOfBirth string   `json:"date_of_birth" example:"1958-03-14"`
	Gender      string   `json:"gender" example:"female"`
	Conditions  []string `json:"conditions"`
}

type PatientListResponse struct {
	Patients []PatientSummary `json:"patients"`
}

// BriefingResponse is the outward shape of a generated briefing.
type BriefingResponse struct {
	PatientID   int                           `json:"patient_id"`
	Briefing    briefingModel.PatientBriefing `json:"briefing"`
	GeneratedAt time.Time                     `json:"generated_at"`
}
