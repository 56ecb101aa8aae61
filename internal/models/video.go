// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import "fmt"

// VideoKind distinguishes movies from serials.
type VideoKind int

const (
	// KindMovie is a single-season video.
	KindMovie VideoKind = iota
	// KindSerial is a video with one or more numbered seasons.
	KindSerial
)

// String returns the kind name used in logs and metrics labels.
func (k VideoKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSerial:
		return "serial"
	default:
		return "unknown"
	}
}

// Season holds the duration of one season and the grades it received.
type Season struct {
	// Number is the 1-based season number.
	Number int `json:"number"`

	// Duration is the season length in minutes.
	Duration int `json:"duration"`

	// Ratings are the individual grades submitted for this season.
	Ratings []float64 `json:"ratings,omitempty"`
}

// Mean returns the mean grade of the season, or 0 when it has none.
func (s *Season) Mean() float64 {
	if len(s.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range s.Ratings {
		sum += r
	}
	return sum / float64(len(s.Ratings))
}

// Video is a catalog entry: a movie or a serial.
//
// A movie always has exactly one implicit season which holds its duration
// and its grades, so rating logic is identical for both kinds.
type Video struct {
	// Title uniquely identifies the video in the catalog.
	Title string `json:"title"`

	// Kind is movie or serial.
	Kind VideoKind `json:"kind"`

	// Year is the release year.
	Year int `json:"year"`

	// Genres in the order they were listed at load time.
	Genres []string `json:"genres"`

	// Cast lists the actor names credited on the video.
	Cast []string `json:"cast,omitempty"`

	// Seasons holds per-season duration and grades.
	Seasons []*Season `json:"seasons"`

	// Index is the stable catalog insertion index; the universal tie-break.
	Index int `json:"index"`
}

// NewMovie builds a movie with its single implicit season.
func NewMovie(title string, year int, genres, cast []string, duration int) *Video {
	return &Video{
		Title:   title,
		Kind:    KindMovie,
		Year:    year,
		Genres:  genres,
		Cast:    cast,
		Seasons: []*Season{{Number: 1, Duration: duration}},
	}
}

// NewSerial builds a serial from its season list. Season numbers are
// reassigned to 1..n in the given order.
func NewSerial(title string, year int, genres, cast []string, seasons []*Season) *Video {
	for i, s := range seasons {
		s.Number = i + 1
	}
	return &Video{
		Title:   title,
		Kind:    KindSerial,
		Year:    year,
		Genres:  genres,
		Cast:    cast,
		Seasons: seasons,
	}
}

// IsMovie reports whether the video is a movie.
func (v *Video) IsMovie() bool {
	return v.Kind == KindMovie
}

// HasGenre reports whether the video carries the genre.
func (v *Video) HasGenre(genre string) bool {
	for _, g := range v.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Duration returns the total running time across all seasons.
func (v *Video) Duration() int {
	total := 0
	for _, s := range v.Seasons {
		total += s.Duration
	}
	return total
}

// Rating returns the aggregate rating: the mean over all seasons of each
// season's mean grade. Seasons without grades count as 0; a video with no
// grades at all rates 0. The value is computed on every call.
func (v *Video) Rating() float64 {
	if len(v.Seasons) == 0 {
		return 0
	}
	var sum float64
	rated := false
	for _, s := range v.Seasons {
		if len(s.Ratings) > 0 {
			rated = true
		}
		sum += s.Mean()
	}
	if !rated {
		return 0
	}
	return sum / float64(len(v.Seasons))
}

// NormalizeSeason maps a requested season number onto the video. Movies
// ignore the request and always use their implicit season 1.
func (v *Video) NormalizeSeason(season int) (int, error) {
	if v.IsMovie() {
		return 1, nil
	}
	if season < 1 || season > len(v.Seasons) {
		return 0, fmt.Errorf("%w: season %d out of range for %q (1-%d)",
			ErrInvalidInput, season, v.Title, len(v.Seasons))
	}
	return season, nil
}

// AddRating records a grade against a season. The season must already be
// normalised with NormalizeSeason.
func (v *Video) AddRating(season int, grade float64) error {
	if season < 1 || season > len(v.Seasons) {
		return fmt.Errorf("%w: season %d out of range for %q", ErrInvalidInput, season, v.Title)
	}
	s := v.Seasons[season-1]
	s.Ratings = append(s.Ratings, grade)
	return nil
}
