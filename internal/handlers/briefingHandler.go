package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ramanshrivastava/build-ai-agents/internal/adapter"
	"github.com/ramanshrivastava/build-ai-agents/internal/adapter/utils"
	"github.com/ramanshrivastava/build-ai-agents/internal/api"
	"github.com/ramanshrivastava/build-ai-agents/internal/briefing"
)

var briefingService briefing.Service

func InitBriefingHandler(svc briefing.Service) {
	briefingService = svc
}

// PostBriefingHandler godoc
// @Summary      Generate a pre-visit briefing
// @Description  Runs the generation engine over the patient record. Uses guideline retrieval when the vector store is reachable, plain generation otherwise. Synchronous; the connection stays open until the briefing is ready.
// @Tags         Briefings
// @Produce      json
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  api.BriefingResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse  "error.code carries the generation failure code"
// @Router       /patients/{id}/briefing [post]
func PostBriefingHandler(w http.ResponseWriter, r *http.Request) {
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

	result, err := briefingService.GenerateBriefing(r.Context(), patient)
	if err != nil {
		var genErr *briefing.GenerationError
		if errors.As(err, &genErr) {
			logRH.Error("briefing generation failed", "patientId", id, "code", genErr.Code, "message", genErr.Message)
			WriteErrorResponse(w, http.StatusInternalServerError, genErr.Code, genErr.Message)
			return
		}
		logRH.Error("briefing generation failed", "patientId", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, api.CodeInternalError, "briefing generation failed")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToBriefingResponse(id, result))
}
