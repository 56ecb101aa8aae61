// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package cache provides thread-safe in-memory ranking structures.

# Overview

RankHeap is a generic max-heap keyed by string. Entries carry a score and the
order in which their key was first seen; higher scores rank first and equal
scores rank by first insertion. A parallel map gives O(1) lookup so scores can
be accumulated in place.

# Usage Example

	h := cache.NewRankHeap[struct{}]()
	for _, v := range videos {
	    for _, g := range v.Genres {
	        h.Add(g, struct{}{}, float64(views[v.Title]))
	    }
	}
	for top := h.Peek(); top != nil; top = h.Peek() {
	    // most viewed genre first
	    h.Remove(top.Key)
	}

# Thread Safety

All operations take the heap's sync.RWMutex; the structure may be shared
between goroutines.
*/
package cache
