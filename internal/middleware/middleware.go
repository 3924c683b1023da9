package middleware

import (
	"net/http"
	"strconv"

	"github.com/ramanshrivastava/build-ai-agents/internal/handlers"
	"github.com/ramanshrivastava/build-ai-agents/internal/metrics"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	apiCode      string
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var ListPatientsHandler = Wrap(handlers.ListPatientsHandler)
var GetPatientHandler = Wrap(handlers.GetPatientHandler)
var PostBriefingHandler = Wrap(handlers.PostBriefingHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200}
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc()
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")

	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = rateLimiter(re)
	return re
}
