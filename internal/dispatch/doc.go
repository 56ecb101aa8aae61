// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package dispatch applies a batch of requests in order.
//
// Dispatcher implements models.RequestVisitor, so every request variant has
// exactly one handler and a new variant cannot be added without one. Each
// request is validated with package validation before it reaches an engine.
// Business failures are folded into the returned models.Result; nothing a
// single request does can stop the batch.
package dispatch
