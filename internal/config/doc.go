// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package config loads videodb configuration with Koanf v2.

# Sources

Configuration is layered, later sources winning:

 1. Built-in defaults (structs provider)
 2. YAML file from CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables, through an explicit mapping table
 4. Caller overrides, used by the CLI for its flags

# Environment Variables

	VIDEODB_DATASET               input.dataset_path (required)
	VIDEODB_OUTPUT                input.output_path (default: stdout)
	LOG_LEVEL                     logging.level
	LOG_FORMAT                    logging.format
	LOG_CALLER                    logging.caller
	METRICS_ENABLED               metrics.enabled
	METRICS_TEXTFILE              metrics.textfile_path
	SUPERVISOR_FAILURE_THRESHOLD  supervisor.failure_threshold
	SUPERVISOR_FAILURE_DECAY      supervisor.failure_decay
	SUPERVISOR_FAILURE_BACKOFF    supervisor.failure_backoff
	SUPERVISOR_SHUTDOWN_TIMEOUT   supervisor.shutdown_timeout

Unmapped variables are ignored.

# Example File

	input:
	  dataset_path: testdata/basic.json
	  output_path: out/results.json
	logging:
	  level: debug
	  format: console
	metrics:
	  enabled: true
	  textfile_path: /var/lib/node_exporter/videodb.prom
*/
package config
