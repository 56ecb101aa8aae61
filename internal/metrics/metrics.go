// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch instrumentation. The process exits after one batch, so metrics are
// exported by writing a node_exporter textfile rather than by scraping.

var (
	// Request Metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videodb_requests_total",
			Help: "Total number of processed requests by kind, sub-kind and outcome",
		},
		[]string{"kind", "sub_kind", "outcome"}, // outcome: ok, rejected, error
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "videodb_request_duration_seconds",
			Help:    "Duration of request processing in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"kind"},
	)

	// Batch Metrics
	BatchRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "videodb_batch_requests",
			Help: "Number of requests in the last batch",
		},
	)

	BatchDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "videodb_batch_duration_seconds",
			Help: "Wall time of the last batch in seconds",
		},
	)

	// Dataset Metrics
	CatalogVideos = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "videodb_catalog_videos",
			Help: "Number of videos in the catalog by kind",
		},
		[]string{"kind"}, // "movie", "serial"
	)

	CatalogActors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "videodb_catalog_actors",
			Help: "Number of actors in the catalog",
		},
	)

	CatalogUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "videodb_users",
			Help: "Number of users in the store",
		},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "videodb_dataset_load_duration_seconds",
			Help:    "Time taken to decode and index the dataset",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videodb_dataset_load_errors_total",
			Help: "Total number of dataset load failures",
		},
		[]string{"error_type"}, // "read", "decode", "integrity"
	)

	// Supervisor Metrics
	ServiceRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videodb_service_restarts_total",
			Help: "Total number of supervised service restarts",
		},
		[]string{"service"},
	)
)

// knownSubKinds bounds the sub_kind label. Query criteria and malformed
// request types are read from the dataset, so any other value is counted
// as "unknown".
var knownSubKinds = map[string]struct{}{
	// commands
	"favorite": {}, "view": {}, "rating": {},
	// recommendations
	"standard": {}, "best_unseen": {}, "popular": {}, "search": {},
	// query criteria
	"average": {}, "awards": {}, "filter_description": {}, "ratings": {},
	"longest": {}, "most_viewed": {}, "num_ratings": {},
}

func subKindLabel(subKind string) string {
	if _, ok := knownSubKinds[subKind]; ok {
		return subKind
	}
	return "unknown"
}

// RecordRequest records one processed request.
func RecordRequest(kind, subKind, outcome string, duration time.Duration) {
	RequestsTotal.WithLabelValues(kind, subKindLabel(subKind), outcome).Inc()
	RequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordBatch records the size and wall time of a finished batch.
func RecordBatch(requests int, duration time.Duration) {
	BatchRequests.Set(float64(requests))
	BatchDuration.Set(duration.Seconds())
}

// SetCatalogSize records the size of the loaded dataset.
func SetCatalogSize(movies, serials, actors, users int) {
	CatalogVideos.WithLabelValues("movie").Set(float64(movies))
	CatalogVideos.WithLabelValues("serial").Set(float64(serials))
	CatalogActors.Set(float64(actors))
	CatalogUsers.Set(float64(users))
}

// RecordDatasetLoad records a dataset load attempt. errorType is ignored on
// success.
func RecordDatasetLoad(duration time.Duration, errorType string, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		if errorType == "" {
			errorType = "other"
		}
		DatasetLoadErrors.WithLabelValues(errorType).Inc()
	}
}

// RecordServiceRestart records a supervised service restart.
func RecordServiceRestart(service string) {
	ServiceRestarts.WithLabelValues(service).Inc()
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text format, for collection by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(prometheus.DefaultGatherer, path)
}

// WriteTextfileFrom writes the metrics of g to path.
func WriteTextfileFrom(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
