// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package metrics exposes Prometheus instrumentation for the
// SmartFridge service: HTTP latency and throughput, search engine
// activity, event bus dispatch, store operations, and catalog state.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartfridge_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartfridge_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Search Engine Metrics
	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartfridge_searches_total",
			Help: "Total number of recipe searches executed",
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartfridge_search_results",
			Help:    "Number of results returned per recipe search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartfridge_search_duration_seconds",
			Help:    "Duration of recipe ranking in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartfridge_events_published_total",
			Help: "Total number of events published to the event bus",
		},
		[]string{"type"},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartfridge_event_handler_errors_total",
			Help: "Total number of event handler failures (isolated, never fatal)",
		},
		[]string{"type", "handler"},
	)

	// Store Metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartfridge_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"operation", "status"},
	)

	// Catalog Metrics
	CatalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "smartfridge_catalog_recipes",
			Help: "Number of recipes in the active catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartfridge_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"status"}, // "success" or "error"
	)
)

// RecordHTTPRequest records latency and count for one HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
}

// RecordSearch records one executed search and its result count.
func RecordSearch(resultCount int, duration time.Duration) {
	SearchesTotal.Inc()
	SearchResults.Observe(float64(resultCount))
	SearchDuration.Observe(duration.Seconds())
}

// RecordStoreOperation records one store operation outcome.
func RecordStoreOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreOperations.WithLabelValues(operation, status).Inc()
}
