// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/users"
)

// Engine produces single-title recommendations for a user.
//
// Every strategy returns the empty string when nothing applies. Strategies
// never mutate state; derived scores are recomputed on each call.
type Engine struct {
	videos catalog.Reader
	users  users.Reader
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine over read-only views of the
// catalog and the user population.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(videos catalog.Reader, population users.Reader, logger zerolog.Logger) *Engine {
	return &Engine{
		videos: videos,
		users:  population,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Standard returns the first video, movies then serials in catalog order,
// the user has not seen.
func (e *Engine) Standard(username string) (string, error) {
	u, err := e.users.User(username)
	if err != nil {
		return "", err
	}
	return firstUnseen(u, e.videos.Videos()), nil
}

// BestUnseen returns the highest rated video the user has not seen. Equal
// ratings go to the lower catalog index.
func (e *Engine) BestUnseen(username string) (string, error) {
	u, err := e.users.User(username)
	if err != nil {
		return "", err
	}

	videos := e.videos.Videos()
	ranked := make([]scored, len(videos))
	for i, v := range videos {
		ranked[i] = scored{video: v, score: v.Rating()}
	}
	sortDescending(ranked)

	return firstUnseenScored(u, ranked), nil
}

// Popular walks genres from most to least viewed and returns the first
// unseen video of the first genre that has one, preferring movies over
// serials. Premium only.
func (e *Engine) Popular(username string) (string, error) {
	u, err := e.premiumUser(username, "popular")
	if err != nil {
		return "", err
	}

	ranking := catalog.PopularGenres(e.videos, e.users.All())
	for {
		genre, views, ok := ranking.Top()
		if !ok {
			return "", nil
		}
		if title := firstUnseenInGenre(u, e.videos.Movies(), genre); title != "" {
			return title, nil
		}
		if title := firstUnseenInGenre(u, e.videos.Serials(), genre); title != "" {
			return title, nil
		}

		e.logger.Trace().
			Str("username", u.Username).
			Str("genre", genre).
			Int("views", views).
			Int("genres_left", ranking.Len()-1).
			Msg("genre exhausted")
		ranking.Exhaust(genre)
	}
}

// Favorite returns the unseen video found in the most favorite lists. Videos
// nobody favorited are never recommended. Premium only.
func (e *Engine) Favorite(username string) (string, error) {
	u, err := e.premiumUser(username, "favorite")
	if err != nil {
		return "", err
	}

	population := e.users.All()
	var ranked []scored
	for _, v := range e.videos.Videos() {
		if n := catalog.FavoriteCount(v, population); n > 0 {
			ranked = append(ranked, scored{video: v, score: float64(n)})
		}
	}
	sortDescending(ranked)

	return firstUnseenScored(u, ranked), nil
}

// premiumUser resolves the user and rejects standard-tier accounts.
func (e *Engine) premiumUser(username, strategy string) (*models.User, error) {
	u, err := e.users.User(username)
	if err != nil {
		return nil, err
	}
	if !u.IsPremium() {
		return nil, fmt.Errorf("%s recommendation for %s: %w", strategy, u.Username, models.ErrPremiumOnly)
	}
	return u, nil
}

// scored pairs a video with its ranking score.
type scored struct {
	video *models.Video
	score float64
}

// sortDescending orders by score descending, then catalog index ascending.
func sortDescending(items []scored) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].video.Index < items[j].video.Index
	})
}

func firstUnseen(u *models.User, videos []*models.Video) string {
	for _, v := range videos {
		if !u.HasSeen(v.Title) {
			return v.Title
		}
	}
	return ""
}

func firstUnseenScored(u *models.User, items []scored) string {
	for _, it := range items {
		if !u.HasSeen(it.video.Title) {
			return it.video.Title
		}
	}
	return ""
}

func firstUnseenInGenre(u *models.User, videos []*models.Video, genre string) string {
	for _, v := range videos {
		if v.HasGenre(genre) && !u.HasSeen(v.Title) {
			return v.Title
		}
	}
	return ""
}
