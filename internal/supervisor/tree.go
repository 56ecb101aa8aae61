// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package supervisor

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/tomtom215/videodb/internal/config"
	"github.com/tomtom215/videodb/internal/metrics"
)

// TreeConfig tunes the root supervisor. FailureThreshold failures, decaying
// over FailureDecay seconds, put the batch into FailureBackoff. Zero fields
// take the DefaultTreeConfig value.
type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultTreeConfig returns suture's built-in defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// TreeConfigFrom maps the supervisor section of the run configuration.
func TreeConfigFrom(cfg config.SupervisorConfig) TreeConfig {
	return TreeConfig(cfg)
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	return TreeConfig{
		FailureThreshold: cmp.Or(c.FailureThreshold, d.FailureThreshold),
		FailureDecay:     cmp.Or(c.FailureDecay, d.FailureDecay),
		FailureBackoff:   cmp.Or(c.FailureBackoff, d.FailureBackoff),
		ShutdownTimeout:  cmp.Or(c.ShutdownTimeout, d.ShutdownTimeout),
	}
}

// SupervisorTree runs one batch under a single root supervisor:
//
//	videodb
//	└── batch-service
//
// The batch service ends the tree when it finishes, so nothing nests.
type SupervisorTree struct {
	root   *suture.Supervisor
	logger *slog.Logger
	config TreeConfig
}

// NewSupervisorTree builds the root supervisor. Supervisor events are
// logged through logger and restarts are counted in metrics.
func NewSupervisorTree(logger *slog.Logger, cfg TreeConfig) (*SupervisorTree, error) {
	cfg = cfg.withDefaults()

	hook := &sutureslog.Handler{Logger: logger}
	root := suture.New("videodb", suture.Spec{
		EventHook:        restartCounter(hook.MustHook()),
		FailureThreshold: cfg.FailureThreshold,
		FailureDecay:     cfg.FailureDecay,
		FailureBackoff:   cfg.FailureBackoff,
		Timeout:          cfg.ShutdownTimeout,
	})

	return &SupervisorTree{root: root, logger: logger, config: cfg}, nil
}

// restartCounter wraps an event hook so every service restart is counted
// in the metrics before the event is logged.
func restartCounter(next suture.EventHook) suture.EventHook {
	return func(e suture.Event) {
		switch ev := e.(type) {
		case suture.EventServicePanic:
			if ev.Restarting {
				metrics.RecordServiceRestart(ev.ServiceName)
			}
		case suture.EventServiceTerminate:
			if ev.Restarting {
				metrics.RecordServiceRestart(ev.ServiceName)
			}
		}
		next(e)
	}
}

// Add adds a service to the root supervisor.
func (t *SupervisorTree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Serve runs the tree until a service terminates it or ctx is canceled.
// A tree terminated by one of its services returns nil.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	err := t.root.Serve(ctx)
	if errors.Is(err, suture.ErrTerminateSupervisorTree) {
		return nil
	}
	return err
}

// UnstoppedServiceReport lists services that outlived the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
