package store

import (
	"time"

	"github.com/ramanshrivastava/build-ai-agents/internal/domain/patientModel"
)

// SeedPatients is the demo panel loaded when no patient database is
// available. Records are synthetic.
func SeedPatients() []patientModel.Patient {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	return []patientModel.Patient{
		{
			ID:          1,
			Name:        "Maria Garcia",
			DateOfBirth: "1958-03-14",
			Gender:      "female",
			Conditions:  []string{"type 2 diabetes", "hypertension", "chronic kidney disease stage 3b"},
			Medications: []patientModel.Medication{
				{Name: "metformin", Dosage: "1000mg", Frequency: "twice daily"},
				{Name: "lisinopril", Dosage: "20mg", Frequency: "once daily"},
				{Name: "atorvastatin", Dosage: "40mg", Frequency: "once daily"},
			},
			Labs: []patientModel.LabResult{
				{Name: "eGFR", Value: 38, Unit: "mL/min/1.73m2", Date: "2026-07-20", ReferenceRange: patientModel.ReferenceRange{Min: 60, Max: 120}},
				{Name: "HbA1c", Value: 8.4, Unit: "%", Date: "2026-07-20", ReferenceRange: patientModel.ReferenceRange{Min: 4, Max: 5.6}},
				{Name: "potassium", Value: 5.1, Unit: "mmol/L", Date: "2026-07-20", ReferenceRange: patientModel.ReferenceRange{Min: 3.5, Max: 5.0}},
			},
			Allergies: []string{"sulfa drugs"},
			Visits: []patientModel.Visit{
				{Date: "2026-04-02", Reason: "diabetes follow-up"},
				{Date: "2025-11-18", Reason: "hypertension check"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          2,
			Name:        "James Chen",
			DateOfBirth: "1949-09-02",
			Gender:      "male",
			Conditions:  []string{"atrial fibrillation", "hyperlipidemia"},
			Medications: []patientModel.Medication{
				{Name: "warfarin", Dosage: "5mg", Frequency: "once daily"},
				{Name: "rosuvastatin", Dosage: "20mg", Frequency: "once daily"},
				{Name: "omeprazole", Dosage: "20mg", Frequency: "once daily"},
			},
			Labs: []patientModel.LabResult{
				{Name: "INR", Value: 3.8, Unit: "", Date: "2026-07-28", ReferenceRange: patientModel.ReferenceRange{Min: 2, Max: 3}},
				{Name: "LDL", Value: 142, Unit: "mg/dL", Date: "2026-06-10", ReferenceRange: patientModel.ReferenceRange{Min: 0, Max: 100}},
			},
			Visits: []patientModel.Visit{
				{Date: "2026-06-10", Reason: "anticoagulation management"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          3,
			Name:        "Dorothy Williams",
			DateOfBirth: "1962-12-30",
			Gender:      "female",
			Conditions:  []string{"osteopenia", "prediabetes"},
			Medications: []patientModel.Medication{
				{Name: "vitamin D", Dosage: "2000IU", Frequency: "once daily"},
			},
			Labs: []patientModel.LabResult{
				{Name: "HbA1c", Value: 6.1, Unit: "%", Date: "2026-05-15", ReferenceRange: patientModel.ReferenceRange{Min: 4, Max: 5.6}},
			},
			Visits: []patientModel.Visit{
				{Date: "2024-01-22", Reason: "annual physical"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
