// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package dataset loads the input document of a run and writes its results.

# Input

One JSON document holds five arrays:

	{
	  "actors":   [{"name", "career_description", "filmography", "awards"}],
	  "users":    [{"username", "subscription_type", "history", "favorite_movies"}],
	  "movies":   [{"title", "year", "genres", "cast", "duration"}],
	  "serials":  [{"title", "year", "genres", "cast", "seasons": [{"duration"}]}],
	  "commands": [{"action_id", "action_type", "type", ...}]
	}

Commands are decoded into the typed request variants of package models.
A command whose family or type is not recognised becomes a
models.MalformedRequest and still yields a result in its slot.

Duplicate usernames, titles or actor names abort the load with
models.ErrIntegrity before any request runs.

# Output

Results are written in request order as

	[{"id": 1, "message": "Added to Favorites!"}, ...]

See Message for the rendering rules.
*/
package dataset
