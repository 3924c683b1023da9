package handlers

import (
	"net/http"
	"strconv"

	"github.com/ramanshrivastava/build-ai-agents/internal/adapter"
	"github.com/ramanshrivastava/build-ai-agents/internal/adapter/utils"
	"github.com/ramanshrivastava/build-ai-agents/internal/api"
	"github.com/ramanshrivastava/build-ai-agents/internal/data/store"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

var (
	logRH        *logger_i.Logger
	patientStore store.PatientStore
)

// InitPatientHandlers wires the record store into the handler package.
func InitPatientHandlers(ps store.PatientStore) {
	logRH = logger_i.NewLogger("Handlers")
	patientStore = ps
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ListPatientsHandler godoc
// @Summary      List patients
// @Description  Returns the patient panel as compact summaries.
// @Tags         Patients
// @Produce      json
// @Success      200  {object}  api.PatientListResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /patients [get]
func ListPatientsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("invalid context by request", "remote", r.RemoteAddr)
		return
	}

	patients, err := patientStore.ListPatients(r.Context())
	if err != nil {
		logRH.Error("listing patients failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, api.CodeInternalError, "could not list patients")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToPatientListResponse(patients))
}

// GetPatientHandler godoc
// @Summary      Get a patient record
// @Description  Returns the full clinical record for one patient.
// @Tags         Patients
// @Produce      json
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  patientModel.Patient
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /patients/{id} [get]
func GetPatientHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("invalid context by request", "remote", r.RemoteAddr)
		return
	}

	idString := utils.GetChiURLParam(r, "id")
	id, err := strconv.Atoi(idString)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, api.CodeInvalidRequest, "patient id must be an integer")
		return
	}

	patient, found := patientStore.GetPatient(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, api.CodePatientNotFound, "no patient with id "+idString)
		return
	}
	writeJsonResponse(w, http.StatusOK, patient)
}
