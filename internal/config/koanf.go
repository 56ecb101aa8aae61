// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset or
// points at a missing file. A run needs no file at all.
var DefaultConfigPaths = []string{
	"videodb.yaml",
	"videodb.yml",
	"config.yaml",
	"config.yml",
	"/etc/videodb/config.yaml",
}

// ConfigPathEnvVar names an explicit YAML file.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig is the bottom layer. The dataset path has no default.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		// suture's own defaults
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf builds the run configuration from, lowest priority first:
// struct defaults, an optional YAML file, mapped environment variables,
// then overrides (koanf path to value, usually from CLI flags). Empty
// override values are skipped so an unset flag never hides a lower layer.
func LoadWithKoanf(overrides map[string]string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := applyOverrides(k, overrides); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyOverrides(k *koanf.Koanf, overrides map[string]string) error {
	for path, value := range overrides {
		if value == "" {
			continue
		}
		if err := k.Set(path, value); err != nil {
			return fmt.Errorf("override %s: %w", path, err)
		}
	}
	return nil
}

// findConfigFile returns the first existing candidate, or "".
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if explicit := os.Getenv(ConfigPathEnvVar); explicit != "" {
		candidates = append([]string{explicit}, DefaultConfigPaths...)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// envMappings maps lowercased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"videodb_dataset": "input.dataset_path",
	"videodb_output":  "input.output_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_enabled":  "metrics.enabled",
	"metrics_textfile": "metrics.textfile_path",

	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc returns the koanf path for an environment variable, or
// "" to drop it, e.g. VIDEODB_DATASET becomes input.dataset_path.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
