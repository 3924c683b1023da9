package ingest

import (
	"path/filepath"
	"strings"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/chunker"
)

// guidelineMetadata maps guideline filenames to the filterable payload fields
// stamped onto every chunk. Files not listed here still ingest; they just
// carry a title derived from the filename and no filters.
var guidelineMetadata = map[string]chunker.DocumentMeta{
	"diabetes_management.md": {
		DocumentID:      "diabetes_management",
		DocumentTitle:   "ADA Standards of Care: Diabetes Management",
		Specialty:       "endocrinology",
		DocumentType:    "guideline",
		Conditions:      []string{"type 2 diabetes", "type 1 diabetes", "prediabetes"},
		Drugs:           []string{"metformin", "insulin", "semaglutide", "empagliflozin"},
		PublicationDate: "2024-01-01",
	},
	"hypertension_management.md": {
		DocumentID:      "hypertension_management",
		DocumentTitle:   "ACC/AHA Hypertension Clinical Practice Guidelines",
		Specialty:       "cardiology",
		DocumentType:    "guideline",
		Conditions:      []string{"hypertension", "chronic kidney disease"},
		Drugs:           []string{"lisinopril", "amlodipine", "hydrochlorothiazide", "losartan"},
		PublicationDate: "2023-06-01",
	},
	"lipid_management.md": {
		DocumentID:      "lipid_management",
		DocumentTitle:   "AHA/ACC Guideline on the Management of Blood Cholesterol",
		Specialty:       "cardiology",
		DocumentType:    "guideline",
		Conditions:      []string{"hyperlipidemia", "atherosclerotic cardiovascular disease"},
		Drugs:           []string{"atorvastatin", "rosuvastatin", "ezetimibe"},
		PublicationDate: "2023-11-01",
	},
	"anticoagulation.md": {
		DocumentID:      "anticoagulation",
		DocumentTitle:   "CHEST Antithrombotic Therapy Guidelines",
		Specialty:       "cardiology",
		DocumentType:    "guideline",
		Conditions:      []string{"atrial fibrillation", "venous thromboembolism"},
		Drugs:           []string{"warfarin", "apixaban", "rivaroxaban"},
		PublicationDate: "2024-02-01",
	},
	"preventive_screenings.md": {
		DocumentID:      "preventive_screenings",
		DocumentTitle:   "USPSTF Preventive Screening Recommendations",
		Specialty:       "primary_care",
		DocumentType:    "screening_protocol",
		Conditions:      []string{"colorectal cancer", "breast cancer", "osteoporosis"},
		PublicationDate: "2024-03-01",
	},
	"drug_interactions.md": {
		DocumentID:      "drug_interactions",
		DocumentTitle:   "Clinically Significant Drug-Drug Interactions Reference",
		Specialty:       "pharmacology",
		DocumentType:    "interaction_reference",
		Drugs:           []string{"warfarin", "metformin", "lisinopril", "atorvastatin", "omeprazole"},
		PublicationDate: "2024-04-01",
	},
}

// lookupMetadata resolves document metadata for a file path, falling back to
// a filename-derived identity for unregistered documents.
func lookupMetadata(path string) chunker.DocumentMeta {
	base := filepath.Base(path)
	if meta, ok := guidelineMetadata[base]; ok {
		return meta
	}

	id := strings.TrimSuffix(base, filepath.Ext(base))
	title := strings.ReplaceAll(id, "_", " ")
	return chunker.DocumentMeta{
		DocumentID:    id,
		DocumentTitle: title,
		DocumentType:  "document",
	}
}
