// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import "time"

// Config holds all configuration for a videodb run.
type Config struct {
	Input      InputConfig      `koanf:"input"`
	Logging    LoggingConfig    `koanf:"logging"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// InputConfig locates the dataset and the results file.
type InputConfig struct {
	// DatasetPath is the JSON document holding actors, users, movies,
	// serials and commands. Required.
	DatasetPath string `koanf:"dataset_path"`

	// OutputPath is where results are written. Empty means stdout.
	OutputPath string `koanf:"output_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal
	// or disabled.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Enabled writes metrics after the batch completes.
	// Default: false
	Enabled bool `koanf:"enabled"`

	// TextfilePath is the .prom file read by node_exporter's textfile
	// collector. Required when Enabled.
	TextfilePath string `koanf:"textfile_path"`
}

// SupervisorConfig tunes the supervisor tree that runs the batch.
type SupervisorConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64 `koanf:"failure_threshold"`

	// FailureDecay is the rate at which failures decay in seconds.
	// Default: 30
	FailureDecay float64 `koanf:"failure_decay"`

	// FailureBackoff is the duration to wait when threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration `koanf:"failure_backoff"`

	// ShutdownTimeout is the maximum time to wait for the batch to stop.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}
