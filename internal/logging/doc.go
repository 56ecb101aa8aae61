// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package logging provides centralized zerolog-based logging for videodb.

# Overview

A single global zerolog logger is configured once at startup from the
logging section of the config. Components derive child loggers with
WithComponent, and the batch run carries its correlation id and the id of
the request in flight through context.Context.

# Quick Start

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	})

	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx = logging.ContextWithActionID(ctx, req.ActionID())
	logging.Ctx(ctx).Debug().Str("outcome", res.Outcome()).Msg("request processed")

# Output

Logs are written to stderr. JSON is the default; console format is meant
for interactive runs:

	{"level":"info","correlation_id":"3f9a1c2e","requests":42,"time":"2026-10-17T09:00:00Z","message":"batch complete"}

# slog Bridge

The supervisor library logs through log/slog. SlogHandler adapts slog
records onto a zerolog logger so supervisor events share the same format
and level filtering.

# Best Practices

Always terminate log chains with .Msg() or .Send():

	logging.Info().Str("key", "value").Msg("message")  // Correct
	logging.Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
