// Package metrics holds the Prometheus collectors shared by the MCP server,
// the picker and the HTTP shell.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Validation result label values.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

var (
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_picker_tool_calls_total",
		Help: "Total number of MCP tool calls by tool and outcome",
	}, []string{"tool", "outcome"})
	Validations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_picker_validations_total",
		Help: "Total number of color strings validated by format and result",
	}, []string{"format", "result"})
	Broadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "color_picker_broadcasts_total",
		Help: "Total number of color snapshots published to subscribers",
	})
	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "color_picker_subscribers",
		Help: "Number of subscribers currently attached to the picker",
	})
	DroppedSnapshots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "color_picker_dropped_snapshots_total",
		Help: "Total number of stale snapshots dropped for slow subscribers",
	})
)

// ObserveToolCall counts one tool call. A nil err is an ok outcome.
func ObserveToolCall(tool string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	ToolCalls.WithLabelValues(tool, outcome).Inc()
}

// ObserveValidation counts one validation of a color string.
func ObserveValidation(format string, valid bool) {
	result := ResultAccepted
	if !valid {
		result = ResultRejected
	}
	Validations.WithLabelValues(format, result).Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
