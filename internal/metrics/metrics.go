// Package metrics defines and registers all custom Prometheus metrics for the
// listings client. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "listings"

// RequestsTotal counts backend calls that completed (with any outcome).
// Labels:
//   - class: "public" or "protected" (whether the path is on the public allow-list)
//   - method: HTTP method
//   - outcome: "ok", "unauthorized", "forbidden", "not_found", "validation",
//     "server_error", "no_response"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, by path class and outcome.",
	},
	[]string{"class", "method", "outcome"},
)

// RequestDuration measures wall-clock time of a single backend call.
// Label:
//   - outcome: same values as RequestsTotal
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend requests from dispatch to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by result ("ok" / "error").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionClearsTotal counts session teardowns.
// Label:
//   - reason: "logout" or "unauthorized"
var SessionClearsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_clears_total",
		Help:      "Total number of session clears, by reason.",
	},
	[]string{"reason"},
)

// UploadBytesTotal counts bytes submitted to the media upload endpoints.
// Label:
//   - kind: "image" or "video"
var UploadBytesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_bytes_total",
		Help:      "Total number of bytes uploaded, by media kind.",
	},
	[]string{"kind"},
)
