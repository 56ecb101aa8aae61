// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv clears every mapped variable and points CONFIG_PATH at a file
// that does not exist, so only the test's own sources apply.
func isolateEnv(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Input.DatasetPath != "" {
		t.Errorf("Input.DatasetPath should be empty by default, got %q", cfg.Input.DatasetPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false by default")
	}
	if cfg.Supervisor.FailureThreshold != 5.0 {
		t.Errorf("Supervisor.FailureThreshold = %v, want 5", cfg.Supervisor.FailureThreshold)
	}
	if cfg.Supervisor.ShutdownTimeout != 10*time.Second {
		t.Errorf("Supervisor.ShutdownTimeout = %v, want 10s", cfg.Supervisor.ShutdownTimeout)
	}
}

// TestLoadWithKoanf_RequiresDataset verifies the dataset path is mandatory
func TestLoadWithKoanf_RequiresDataset(t *testing.T) {
	isolateEnv(t)

	_, err := LoadWithKoanf(nil)
	if err == nil {
		t.Fatal("expected error without a dataset path")
	}
	if !strings.Contains(err.Error(), "VIDEODB_DATASET") {
		t.Errorf("error = %v, want mention of VIDEODB_DATASET", err)
	}
}

// TestLoadWithKoanf_EnvironmentVariables verifies env vars override defaults
func TestLoadWithKoanf_EnvironmentVariables(t *testing.T) {
	isolateEnv(t)
	t.Setenv("VIDEODB_DATASET", "/data/basic.json")
	t.Setenv("VIDEODB_OUTPUT", "/data/out.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_TEXTFILE", "/tmp/videodb.prom")
	t.Setenv("SUPERVISOR_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf(nil)
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Input.DatasetPath != "/data/basic.json" {
		t.Errorf("Input.DatasetPath = %q", cfg.Input.DatasetPath)
	}
	if cfg.Input.OutputPath != "/data/out.json" {
		t.Errorf("Input.OutputPath = %q", cfg.Input.OutputPath)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Caller {
		t.Errorf("Logging = %+v, want debug with caller", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.TextfilePath != "/tmp/videodb.prom" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Supervisor.ShutdownTimeout != 3*time.Second {
		t.Errorf("Supervisor.ShutdownTimeout = %v, want 3s", cfg.Supervisor.ShutdownTimeout)
	}
	if cfg.Supervisor.FailureBackoff != 15*time.Second {
		t.Errorf("Supervisor.FailureBackoff = %v, want default 15s", cfg.Supervisor.FailureBackoff)
	}
}

// TestLoadWithKoanf_ConfigFile verifies YAML loading and env precedence
func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "videodb.yaml")
	content := `
input:
  dataset_path: /from/file.json
logging:
  level: warn
  format: console
supervisor:
  failure_backoff: 2s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf(nil)
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Input.DatasetPath != "/from/file.json" {
		t.Errorf("Input.DatasetPath = %q, want /from/file.json", cfg.Input.DatasetPath)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override error", cfg.Logging.Level)
	}
	if cfg.Supervisor.FailureBackoff != 2*time.Second {
		t.Errorf("Supervisor.FailureBackoff = %v, want 2s", cfg.Supervisor.FailureBackoff)
	}
}

// TestLoadWithKoanf_Overrides verifies caller overrides win over env
func TestLoadWithKoanf_Overrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("VIDEODB_DATASET", "/from/env.json")

	cfg, err := LoadWithKoanf(map[string]string{
		"input.dataset_path": "/from/flag.json",
		"input.output_path":  "",
	})
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Input.DatasetPath != "/from/flag.json" {
		t.Errorf("Input.DatasetPath = %q, want /from/flag.json", cfg.Input.DatasetPath)
	}
	if cfg.Input.OutputPath != "" {
		t.Errorf("empty override should be ignored, got %q", cfg.Input.OutputPath)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"VIDEODB_DATASET", "input.dataset_path"},
		{"LOG_FORMAT", "logging.format"},
		{"METRICS_TEXTFILE", "metrics.textfile_path"},
		{"SUPERVISOR_FAILURE_DECAY", "supervisor.failure_decay"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.input); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
