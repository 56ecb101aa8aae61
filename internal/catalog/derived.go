// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package catalog

import (
	"github.com/tomtom215/videodb/internal/cache"
	"github.com/tomtom215/videodb/internal/models"
)

// Derived metrics are recomputed from the full user population on every call
// so they always reflect the latest commands.

// FavoriteCount returns how many users have the video in their favorites.
func FavoriteCount(v *models.Video, population []*models.User) int {
	count := 0
	for _, u := range population {
		if u.IsFavorite(v.Title) {
			count++
		}
	}
	return count
}

// ViewCount returns the total views of the video across all users.
func ViewCount(v *models.Video, population []*models.User) int {
	total := 0
	for _, u := range population {
		total += u.History[v.Title]
	}
	return total
}

// GenreRanking yields genres in decreasing order of total views. Equal
// totals rank in the order the genres were first encountered while scanning
// movies then serials.
type GenreRanking struct {
	heap *cache.RankHeap[struct{}]
}

// PopularGenres builds the genre ranking over every genre carried by any
// video in the catalog, including genres with zero views.
func PopularGenres(r Reader, population []*models.User) *GenreRanking {
	h := cache.NewRankHeap[struct{}]()
	for _, v := range r.Videos() {
		views := float64(ViewCount(v, population))
		for _, g := range v.Genres {
			h.Add(g, struct{}{}, views)
		}
	}
	return &GenreRanking{heap: h}
}

// Top returns the remaining genre with the highest total views.
// ok is false once the ranking is exhausted.
func (g *GenreRanking) Top() (genre string, views int, ok bool) {
	e := g.heap.Peek()
	if e == nil {
		return "", 0, false
	}
	return e.Key, int(e.Score), true
}

// Exhaust removes a genre so it is never offered again.
func (g *GenreRanking) Exhaust(genre string) {
	g.heap.Remove(genre)
}

// Len returns the number of genres left in the ranking.
func (g *GenreRanking) Len() int {
	return g.heap.Len()
}
