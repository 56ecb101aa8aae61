// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey int

const (
	correlationIDKey contextKey = iota
	actionIDKey
	loggerKey
)

// newCorrelationID returns a short id for one batch run.
func newCorrelationID() string {
	return uuid.New().String()[:8]
}

func withCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ContextWithNewCorrelationID tags ctx with a fresh batch run id.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return withCorrelationID(ctx, newCorrelationID())
}

// CorrelationIDFromContext returns the batch run id, or "" if ctx has none.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// ContextWithActionID tags ctx with the action id of the request in flight.
func ContextWithActionID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, actionIDKey, id)
}

func actionIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(actionIDKey).(int)
	return id, ok
}

// ContextWithLogger makes logger the base for Ctx lookups on ctx.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the context's logger, falling back to the global one, with
// correlation_id and action_id attached when present.
//
//	logging.Ctx(ctx).Debug().Str("outcome", "ok").Msg("Request processed")
//	// {"level":"debug","correlation_id":"abc12345","action_id":7,"outcome":"ok","message":"Request processed"}
func Ctx(ctx context.Context) *zerolog.Logger {
	base, ok := ctx.Value(loggerKey).(zerolog.Logger)
	if !ok {
		base = Logger()
	}

	builder := base.With()
	if id := CorrelationIDFromContext(ctx); id != "" {
		builder = builder.Str("correlation_id", id)
	}
	if id, ok := actionIDFromContext(ctx); ok {
		builder = builder.Int("action_id", id)
	}

	logger := builder.Logger()
	return &logger
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
