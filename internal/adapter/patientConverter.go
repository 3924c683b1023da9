package adapter

import (
	"github.com/ramanshrivastava/build-ai-agents/internal/api"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/briefingModel"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/patientModel"
)

func ToPatientSummary(p patientModel.Patient) api.PatientSummary {
	return api.PatientSummary{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Conditions:  p.Conditions,
	}
}

func ToPatientListResponse(patients []patientModel.Patient) api.PatientListResponse {
	summaries := make([]api.PatientSummary, 0, len(patients))
	for _, p := range patients {
		summaries = append(summaries, ToPatientSummary(p))
	}
	return api.PatientListResponse{Patients: summaries}
}

func ToBriefingResponse(patientID int, briefing briefingModel.BriefingResponse) api.BriefingResponse {
	return api.BriefingResponse{
		PatientID:   patientID,
		Briefing:    briefing.PatientBriefing,
		GeneratedAt: briefing.GeneratedAt,
	}
}

func ToErrorResponse(code string, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
