// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package query

import (
	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/models"
)

// Criteria names.
const (
	CriteriaAverage           = "average"
	CriteriaAwards            = "awards"
	CriteriaFilterDescription = "filter_description"
	CriteriaRatings           = "ratings"
	CriteriaFavorite          = "favorite"
	CriteriaLongest           = "longest"
	CriteriaMostViewed        = "most_viewed"
	CriteriaNumRatings        = "num_ratings"
)

// actorRows builds actor candidates. lex reports a name-ordered criterion.
func (e *Engine) actorRows(q *models.QueryRequest) (rows []row, lex bool, err error) {
	switch q.Criteria {
	case CriteriaAverage, CriteriaAwards, CriteriaFilterDescription:
	default:
		return nil, false, unknownCriteria(q.ObjectType, q.Criteria)
	}

	for _, a := range e.videos.Actors() {
		if !a.HasAwards(q.Filters.Awards) || !a.DescriptionHasWords(q.Filters.Words) {
			continue
		}

		r := row{id: a.Name, index: a.Index}
		switch q.Criteria {
		case CriteriaAverage:
			avg, ok := e.filmographyAverage(a)
			if !ok {
				continue
			}
			r.num = avg
		case CriteriaAwards:
			r.num = float64(a.TotalAwards())
		case CriteriaFilterDescription:
			r.str = a.Name
		}
		rows = append(rows, r)
	}
	return rows, q.Criteria == CriteriaFilterDescription, nil
}

// filmographyAverage is the mean aggregate rating of the actor's rated
// videos. Titles missing from the catalog are skipped.
func (e *Engine) filmographyAverage(a *models.Actor) (float64, bool) {
	var sum float64
	n := 0
	for _, title := range a.Filmography {
		v, err := e.videos.Video(title)
		if err != nil {
			continue
		}
		if r := v.Rating(); r != 0 {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// videoRows builds movie or show candidates.
func (e *Engine) videoRows(q *models.QueryRequest, videos []*models.Video) ([]row, error) {
	switch q.Criteria {
	case CriteriaRatings, CriteriaFavorite, CriteriaLongest, CriteriaMostViewed:
	default:
		return nil, unknownCriteria(q.ObjectType, q.Criteria)
	}

	population := e.users.All()
	var rows []row
	for _, v := range videos {
		if !matchesVideoFilters(v, q.Filters) {
			continue
		}

		var value float64
		switch q.Criteria {
		case CriteriaRatings:
			value = v.Rating()
		case CriteriaFavorite:
			value = float64(catalog.FavoriteCount(v, population))
		case CriteriaLongest:
			value = float64(v.Duration())
		case CriteriaMostViewed:
			value = float64(catalog.ViewCount(v, population))
		}

		// Longest keeps every video; the other criteria drop zero scores.
		if value == 0 && q.Criteria != CriteriaLongest {
			continue
		}
		rows = append(rows, row{id: v.Title, index: v.Index, num: value})
	}
	return rows, nil
}

func matchesVideoFilters(v *models.Video, f models.QueryFilters) bool {
	for _, year := range f.Years {
		if v.Year != year {
			return false
		}
	}
	for _, genre := range f.Genres {
		if !v.HasGenre(genre) {
			return false
		}
	}
	return true
}

// userRows builds user candidates.
func (e *Engine) userRows(q *models.QueryRequest) ([]row, error) {
	if q.Criteria != CriteriaNumRatings {
		return nil, unknownCriteria(q.ObjectType, q.Criteria)
	}

	var rows []row
	for _, u := range e.users.All() {
		if n := u.RatingsGiven(); n > 0 {
			rows = append(rows, row{id: u.Username, index: u.Index, num: float64(n)})
		}
	}
	return rows, nil
}
