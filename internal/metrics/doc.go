// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package metrics provides Prometheus instrumentation for the batch run.

Metrics are registered on the default registry with promauto and updated
through the Record helpers. Because the process handles one batch and exits,
the CLI exports them with WriteTextfile for node_exporter's textfile
collector instead of serving /metrics.

# Metrics

	videodb_requests_total{kind,sub_kind,outcome}   counter
	videodb_request_duration_seconds{kind}          histogram
	videodb_batch_requests                          gauge
	videodb_batch_duration_seconds                  gauge
	videodb_catalog_videos{kind}                    gauge
	videodb_catalog_actors                          gauge
	videodb_users                                   gauge
	videodb_dataset_load_duration_seconds           histogram
	videodb_dataset_load_errors_total{error_type}   counter
	videodb_service_restarts_total{service}         counter
*/
package metrics
