// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package recommend implements the single-title recommendation strategies.
//
// # Strategies
//
//   - Standard: first unseen video, movies then serials in catalog order
//   - BestUnseen: highest aggregate rating among unseen videos
//   - Popular: first unseen video of the most viewed genre that still has
//     one, movies before serials (premium only)
//   - Favorite: unseen video present in the most favorite lists (premium only)
//
// # Ordering
//
// Every ranking is total: equal scores are broken by ascending catalog index,
// so the lower-indexed video wins. Genre ties in the popular ranking go to
// the genre encountered first while scanning the catalog.
//
// # Premium Gating
//
// Popular and Favorite return an error wrapping models.ErrPremiumOnly for
// standard-tier users; the dispatcher reports those as empty results.
//
// # Usage
//
//	engine := recommend.NewEngine(catalog, store, logger)
//	title, err := engine.BestUnseen("alice")
//	if err != nil {
//	    // models.ErrNotFound for an unknown user
//	}
//	if title == "" {
//	    // nothing left to recommend
//	}
//
// # Thread Safety
//
// The engine holds no mutable state of its own but reads the catalog and
// user store without locking. Callers must not run commands concurrently
// with recommendations.
package recommend
