// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package query implements genre search and the generic collection query.

# Search

Search is the premium-only list recommendation: unseen videos of one genre,
ordered by ascending aggregate rating.

# Generic Query

Run evaluates a models.QueryRequest in three steps:

 1. Filter: every filter group is conjunctive (years and genres for videos,
    words and awards for actors).
 2. Sort: stable sort by the criterion value in the requested direction;
    equal values stay in ascending insertion order.
 3. Truncate: keep the first Limit rows; a limit of zero means all rows.

Supported criteria:

	actors        average, awards, filter_description
	movies/shows  ratings, favorite, longest, most_viewed
	users         num_ratings

An unknown criterion for the object type is models.ErrInvalidInput.
*/
package query
