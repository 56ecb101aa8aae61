// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/videodb/internal/config"
	"github.com/tomtom215/videodb/internal/dataset"
	"github.com/tomtom215/videodb/internal/dispatch"
	"github.com/tomtom215/videodb/internal/logging"
	"github.com/tomtom215/videodb/internal/metrics"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/query"
	"github.com/tomtom215/videodb/internal/recommend"
	"github.com/tomtom215/videodb/internal/supervisor"
	"github.com/tomtom215/videodb/internal/supervisor/services"
	"github.com/tomtom215/videodb/internal/users"
)

// Exit codes.
const (
	exitOK     = 0
	exitConfig = 1
	exitLoad   = 2
	exitBatch  = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// parseOverrides maps command-line flags onto koanf paths. Flags left unset
// produce empty values, which LoadWithKoanf ignores.
func parseOverrides(args []string) (map[string]string, error) {
	fs := flag.NewFlagSet("videodb", flag.ContinueOnError)
	input := fs.String("input", "", "dataset JSON document (overrides VIDEODB_DATASET)")
	output := fs.String("output", "", "results file, \"-\" for stdout (overrides VIDEODB_OUTPUT)")
	level := fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	format := fs.String("log-format", "", "log format: json or console")
	textfile := fs.String("metrics-textfile", "", "write Prometheus metrics to this file when the batch ends")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && *input == "" {
		*input = fs.Arg(0)
	}

	overrides := map[string]string{
		"input.dataset_path":    *input,
		"input.output_path":     *output,
		"logging.level":         *level,
		"logging.format":        *format,
		"metrics.textfile_path": *textfile,
	}
	if *textfile != "" {
		overrides["metrics.enabled"] = "true"
	}
	return overrides, nil
}

//nolint:gocyclo // sequential setup steps
func run(args []string) int {
	overrides, err := parseOverrides(args)
	if err != nil {
		return exitConfig
	}

	cfg, err := config.LoadWithKoanf(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "videodb: %v\n", err)
		return exitConfig
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("dataset", cfg.Input.DatasetPath).
		Str("output", cfg.Input.OutputPath).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Configuration loaded")

	// Integrity failures abort before any request runs.
	ds, err := dataset.NewLoader(logging.WithComponent("dataset")).Load(cfg.Input.DatasetPath)
	if err != nil {
		logging.Error().Err(err).Str("path", cfg.Input.DatasetPath).Msg("Failed to load dataset")
		writeMetrics(cfg)
		return exitLoad
	}
	metrics.SetCatalogSize(len(ds.Catalog.Movies()), len(ds.Catalog.Serials()), len(ds.Catalog.Actors()), ds.Users.Len())

	engineLogger := logging.Logger()
	dispatcher := dispatch.New(
		users.NewExecutor(ds.Users, ds.Catalog, engineLogger),
		recommend.NewEngine(ds.Catalog, ds.Users, engineLogger),
		query.NewEngine(ds.Catalog, ds.Users, engineLogger),
	)

	sink := func(results []models.Result) error {
		return dataset.WriteResultsFile(cfg.Input.OutputPath, results)
	}
	batch := services.NewBatchService(dispatcher, ds.Requests, sink, logging.Logger())

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger("supervisor"),
		supervisor.TreeConfigFrom(cfg.Supervisor),
	)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return exitBatch
	}
	tree.Add(batch)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	writeMetrics(cfg)

	if !batch.Started() {
		logging.Error().Msg("Batch never started")
		return exitBatch
	}
	if err := batch.Err(); err != nil {
		logging.Error().Err(err).Msg("Batch failed")
		return exitBatch
	}

	logging.Info().Int("results", len(batch.Results())).Msg("videodb finished")
	return exitOK
}

func writeMetrics(cfg *config.Config) {
	if !cfg.Metrics.Enabled || cfg.Metrics.TextfilePath == "" {
		return
	}
	if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		logging.Warn().Err(err).Msg("Failed to write metrics textfile")
	}
}
