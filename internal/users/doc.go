// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package users owns the user population and executes the commands that
// mutate it: favorite, view and rate.
//
// Engines read users through the Reader interface. Executor is the single
// writer; it also records grades on catalog videos when a rating succeeds.
// Precondition failures wrap the models sentinels so callers can map them to
// status texts with models.StatusFor.
package users
