// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package catalog owns the video and actor collections of one run.

Videos are indexed in insertion order, movies first and serials after them;
that index is the universal tie-break for every ranking in the engines.

Derived metrics (favorite count, view count, genre ranking) take the user
population as an argument and are recomputed on every call. Aggregate
ratings live on models.Video and are likewise computed on read.

Engines receive the catalog through the Reader interface. Only the users
package mutates videos, by recording grades.
*/
package catalog
