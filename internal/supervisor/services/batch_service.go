// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/videodb/internal/logging"
	"github.com/tomtom215/videodb/internal/models"
)

// ErrBatchReplayed is reported when the supervisor restarts a batch that
// already started. Requests mutate state, so a partial batch is never run
// a second time.
var ErrBatchReplayed = errors.New("batch already started; refusing to replay")

// BatchRunner applies requests in order. *dispatch.Dispatcher satisfies it.
type BatchRunner interface {
	Run(ctx context.Context, requests []models.Request) ([]models.Result, error)
}

// ResultSink receives the results of a finished batch.
type ResultSink func(results []models.Result) error

// BatchService runs one batch under suture supervision and then terminates
// the supervisor tree. It runs at most once per instance.
type BatchService struct {
	runner   BatchRunner
	requests []models.Request
	sink     ResultSink
	logger   zerolog.Logger
	name     string

	mu      sync.Mutex
	started bool
	results []models.Result
	err     error
}

// NewBatchService creates a batch service over the given requests.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBatchService(runner BatchRunner, requests []models.Request, sink ResultSink, logger zerolog.Logger) *BatchService {
	return &BatchService{
		runner:   runner,
		requests: requests,
		sink:     sink,
		logger:   logger.With().Str("service", "batch").Logger(),
		name:     "batch-service",
	}
}

// Serve implements the suture.Service interface. It always returns
// suture.ErrTerminateSupervisorTree once the batch is over, successful or
// not; the outcome is available from Err.
func (s *BatchService) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.err = ErrBatchReplayed
		s.mu.Unlock()
		s.logger.Error().Err(ErrBatchReplayed).Msg("batch restarted after a failure")
		return suture.ErrTerminateSupervisorTree
	}
	s.started = true
	s.mu.Unlock()

	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx = logging.ContextWithLogger(ctx, s.logger)

	start := time.Now()
	logging.Ctx(ctx).Info().
		Int("requests", len(s.requests)).
		Msg("batch starting")

	results, err := s.runner.Run(ctx, s.requests)
	if err != nil {
		err = fmt.Errorf("run batch: %w", err)
	} else if s.sink != nil {
		if sinkErr := s.sink(results); sinkErr != nil {
			err = fmt.Errorf("write results: %w", sinkErr)
		}
	}

	s.mu.Lock()
	s.results = results
	s.err = err
	s.mu.Unlock()

	logger := logging.Ctx(ctx)
	var event *zerolog.Event
	if err != nil {
		event = logger.Error().Err(err)
	} else {
		event = logger.Info()
	}
	event.
		Int("results", len(results)).
		Int("failed", countFailed(results)).
		Dur("duration", time.Since(start)).
		Msg("batch finished")

	return suture.ErrTerminateSupervisorTree
}

// Results returns the results of the finished batch.
func (s *BatchService) Results() []models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Err returns the batch failure, if any. It is nil for a batch whose
// requests failed individually but which ran to completion.
func (s *BatchService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Started reports whether Serve was ever entered.
func (s *BatchService) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// String returns the service name for logging.
func (s *BatchService) String() string {
	return s.name
}

func countFailed(results []models.Result) int {
	n := 0
	for i := range results {
		if results[i].Failed() {
			n++
		}
	}
	return n
}
