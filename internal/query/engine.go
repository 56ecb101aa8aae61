// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package query

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/users"
)

// Object types accepted by Run.
const (
	ObjectActors = "actors"
	ObjectMovies = "movies"
	ObjectShows  = "shows"
	ObjectUsers  = "users"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Engine answers genre searches and generic collection queries.
type Engine struct {
	videos catalog.Reader
	users  users.Reader
	logger zerolog.Logger
}

// NewEngine creates a query engine over read-only views of the catalog and
// the user population.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(videos catalog.Reader, population users.Reader, logger zerolog.Logger) *Engine {
	return &Engine{
		videos: videos,
		users:  population,
		logger: logger.With().Str("component", "query").Logger(),
	}
}

// Search lists the videos of a genre the user has not seen, by ascending
// aggregate rating. An unknown genre yields an empty list. Premium only.
func (e *Engine) Search(username, genre string) ([]string, error) {
	u, err := e.users.User(username)
	if err != nil {
		return nil, err
	}
	if !u.IsPremium() {
		return nil, fmt.Errorf("search recommendation for %s: %w", u.Username, models.ErrPremiumOnly)
	}

	var rows []row
	for _, v := range e.videos.Videos() {
		if v.HasGenre(genre) {
			rows = append(rows, row{id: v.Title, index: v.Index, num: v.Rating()})
		}
	}
	sortRows(rows, SortAsc, false)

	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		if !u.HasSeen(r.id) {
			titles = append(titles, r.id)
		}
	}
	return titles, nil
}

// Run filters, sorts and truncates one collection. The result is the
// ordered list of identifiers (titles, actor names or usernames).
func (e *Engine) Run(q *models.QueryRequest) ([]string, error) {
	var (
		rows []row
		lex  bool
		err  error
	)

	switch q.ObjectType {
	case ObjectActors:
		rows, lex, err = e.actorRows(q)
	case ObjectMovies:
		rows, err = e.videoRows(q, e.videos.Movies())
	case ObjectShows:
		rows, err = e.videoRows(q, e.videos.Serials())
	case ObjectUsers:
		rows, err = e.userRows(q)
	default:
		err = fmt.Errorf("%w: unknown object type %q", models.ErrInvalidInput, q.ObjectType)
	}
	if err != nil {
		return nil, err
	}

	sortRows(rows, q.Sort, lex)
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}

	e.logger.Trace().
		Str("object_type", q.ObjectType).
		Str("criteria", q.Criteria).
		Int("matched", len(ids)).
		Msg("query evaluated")
	return ids, nil
}

// row is one candidate in a query: its identifier, its insertion index and
// the value it is sorted by.
type row struct {
	id    string
	index int
	num   float64
	str   string
}

// sortRows orders rows by value in the requested direction. Equal values
// keep ascending insertion order in either direction.
func sortRows(rows []row, direction string, lex bool) {
	desc := direction == SortDesc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if lex {
			if a.str != b.str {
				return (a.str < b.str) != desc
			}
		} else if a.num != b.num {
			return (a.num < b.num) != desc
		}
		return a.index < b.index
	})
}

func unknownCriteria(objectType, criteria string) error {
	return fmt.Errorf("%w: unknown criteria %q for %s", models.ErrInvalidInput, criteria, objectType)
}
