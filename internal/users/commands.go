// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package users

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/models"
)

// Command status texts.
const (
	StatusFavoriteAdded = "Added to Favorites!"
	StatusRatingAdded   = "Added rating!"
	statusViewedFormat  = "Viewed! Total views: %d"
)

// Executor applies commands. It is the only writer of user state and of
// video grades.
type Executor struct {
	store  *Store
	videos catalog.Reader
	logger zerolog.Logger
}

// NewExecutor creates a command executor over the store and catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewExecutor(store *Store, videos catalog.Reader, logger zerolog.Logger) *Executor {
	return &Executor{
		store:  store,
		videos: videos,
		logger: logger.With().Str("component", "commands").Logger(),
	}
}

// target resolves the user and video a command touches.
func (e *Executor) target(username, title string) (*models.User, *models.Video, error) {
	u, err := e.store.User(username)
	if err != nil {
		return nil, nil, err
	}
	v, err := e.videos.Video(title)
	if err != nil {
		return nil, nil, err
	}
	return u, v, nil
}

// Favorite adds a seen title to the user's favorites.
func (e *Executor) Favorite(username, title string) (string, error) {
	u, v, err := e.target(username, title)
	if err != nil {
		return "", err
	}
	if err := u.AddFavorite(v.Title); err != nil {
		return "", fmt.Errorf("favorite %q for %s: %w", v.Title, u.Username, err)
	}

	e.logger.Debug().
		Str("username", u.Username).
		Str("title", v.Title).
		Int("favorites", len(u.Favorites)).
		Msg("favorite added")
	return StatusFavoriteAdded, nil
}

// View records one more view of a title. It always succeeds for a known
// user and video.
func (e *Executor) View(username, title string) (string, error) {
	u, v, err := e.target(username, title)
	if err != nil {
		return "", err
	}
	views := u.View(v.Title)
	return fmt.Sprintf(statusViewedFormat, views), nil
}

// Rate grades one season of a seen video. Movies always rate their implicit
// season 1 whatever season was requested.
func (e *Executor) Rate(username, title string, grade float64, season int) (string, error) {
	if grade < 1 || grade > 5 {
		return "", fmt.Errorf("%w: grade %v outside 1-5", models.ErrInvalidInput, grade)
	}

	u, v, err := e.target(username, title)
	if err != nil {
		return "", err
	}
	if !u.HasSeen(v.Title) {
		return "", fmt.Errorf("rate %q for %s: %w", v.Title, u.Username, models.ErrNotSeen)
	}

	season, err = v.NormalizeSeason(season)
	if err != nil {
		return "", err
	}
	if err := u.MarkRated(v.Title, season); err != nil {
		return "", fmt.Errorf("rate %q season %d for %s: %w", v.Title, season, u.Username, err)
	}
	if err := v.AddRating(season, grade); err != nil {
		return "", fmt.Errorf("record grade: %w", err)
	}

	e.logger.Debug().
		Str("username", u.Username).
		Str("title", v.Title).
		Int("season", season).
		Float64("grade", grade).
		Float64("rating", v.Rating()).
		Msg("rating added")
	return StatusRatingAdded, nil
}
