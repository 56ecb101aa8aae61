// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package models defines the data structures shared by the catalog engine.

Key Components:

  - Video, Season: catalog entries and their per-season grades
  - Actor: performers searched by actor queries
  - User: per-user history, favorites and rating bookkeeping
  - Request: the closed set of request variants and their visitor
  - Result: the outcome of one request
  - Error taxonomy: ErrNotFound, ErrPrecondition, ErrInvalidInput, ErrIntegrity

Request Dispatch:

Request is a sealed interface. Every variant implements Accept by calling
exactly one RequestVisitor method:

	type dispatcher struct{ ... }

	func (d *dispatcher) VisitView(r *models.ViewCommand) models.Result { ... }
	// ... one method per variant

	result := req.Accept(d)

A new variant needs a new visitor method, so every dispatcher must handle it
before the module compiles again.

Thread Safety:

Models are plain values without internal locking. The engine processes one
request at a time, so no synchronization is required.
*/
package models
