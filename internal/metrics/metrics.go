// Package metrics provides the Prometheus collectors of the writing assistant.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "physics_assistant"

// =============================================================================
// Discussion Metrics
// =============================================================================

var (
	// DiscussionRunsTotal counts finished runs by outcome.
	DiscussionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discussion_runs_total",
			Help:      "Total discussion runs by status",
		},
		[]string{"status"},
	)

	// DiscussionStageDuration tracks how long each loop phase takes.
	DiscussionStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discussion_stage_duration_seconds",
			Help:      "Duration of one orchestration stage in seconds",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"stage"},
	)

	// DiscussionIterations tracks how many passes successful runs needed.
	DiscussionIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discussion_iterations",
			Help:      "Iterations used by successful discussion runs",
			Buckets:   []float64{1, 2, 3, 4, 5, 8},
		},
	)
)

// =============================================================================
// LLM Metrics
// =============================================================================

var (
	// LLMGenerationsTotal counts provider attempts.
	LLMGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_generations_total",
			Help:      "Total LLM provider attempts by provider, model and status",
		},
		[]string{"provider", "model", "status"},
	)

	// LLMGenerationLatency tracks provider latency.
	LLMGenerationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_generation_latency_seconds",
			Help:      "LLM provider latency in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)
)

// =============================================================================
// HTTP Metrics
// =============================================================================

var (
	// HTTPRequestsTotal counts served requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
