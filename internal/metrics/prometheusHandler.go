package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var briefingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "briefing_duration_seconds",
	Help:    "End-to-end briefing generation time.",
	Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
}, []string{"mode", "status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

var toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agent_tool_calls_total",
	Help: "Tool invocations issued by the generation engine.",
}, []string{"tool"})

var briefingModeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "briefing_mode_total",
	Help: "Briefing requests by selected generation mode.",
}, []string{"mode"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

// WriteHeader shadows the embedded writer so handlers writing their status
// the ordinary way still get counted.
func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureBriefingMetrics(mode string, status string, timeElapsed time.Duration) {
	briefingDuration.WithLabelValues(mode, status).Observe(timeElapsed.Seconds())
}

func IncrementToolCalls(tool string) {
	toolCallsTotal.WithLabelValues(tool).Inc()
}

func IncrementBriefingMode(mode string) {
	briefingModeTotal.WithLabelValues(mode).Inc()
}
