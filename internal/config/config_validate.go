// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/videodb/internal/logging"
)

// Validate reports every configuration problem at once, joined with
// errors.Join, so a bad environment is fixed in one pass.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Input.validate()...)
	errs = append(errs, c.Metrics.validate()...)
	errs = append(errs, c.Supervisor.validate()...)
	errs = append(errs, c.Logging.validate()...)
	return errors.Join(errs...)
}

func (in InputConfig) validate() []error {
	if strings.TrimSpace(in.DatasetPath) == "" {
		return []error{errors.New("VIDEODB_DATASET is required (input.dataset_path)")}
	}
	// Results must never clobber the document they were computed from.
	if in.OutputPath != "" && filepath.Clean(in.OutputPath) == filepath.Clean(in.DatasetPath) {
		return []error{errors.New("VIDEODB_OUTPUT must differ from VIDEODB_DATASET")}
	}
	return nil
}

func (m MetricsConfig) validate() []error {
	if !m.Enabled {
		return nil
	}
	switch {
	case m.TextfilePath == "":
		return []error{errors.New("METRICS_TEXTFILE is required when METRICS_ENABLED=true")}
	case filepath.Ext(m.TextfilePath) != ".prom":
		// node_exporter's textfile collector only reads *.prom
		return []error{fmt.Errorf("METRICS_TEXTFILE must end in .prom, got %q", m.TextfilePath)}
	}
	return nil
}

func (s SupervisorConfig) validate() []error {
	var errs []error
	if s.FailureThreshold <= 0 {
		errs = append(errs, errors.New("SUPERVISOR_FAILURE_THRESHOLD must be positive"))
	}
	if s.FailureDecay <= 0 {
		errs = append(errs, errors.New("SUPERVISOR_FAILURE_DECAY must be positive"))
	}
	for name, d := range map[string]time.Duration{
		"SUPERVISOR_FAILURE_BACKOFF":  s.FailureBackoff,
		"SUPERVISOR_SHUTDOWN_TIMEOUT": s.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	return errs
}

func (l LoggingConfig) validate() []error {
	var errs []error
	if !logging.ValidLevel(l.Level) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, disabled (got %q)", l.Level))
	}
	switch strings.ToLower(l.Format) {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, console (got %q)", l.Format))
	}
	return errs
}
