// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/metrics"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/users"
)

// Dataset is everything one run needs: the catalog, the user population and
// the ordered request list.
type Dataset struct {
	Catalog  *catalog.Catalog
	Users    *users.Store
	Requests []models.Request
}

// Loader reads input documents and builds a Dataset.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a loader that logs skipped seed data to logger.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and builds the dataset stored at path. Read, decode and
// integrity failures are all fatal and are recorded in the load metrics.
func (l *Loader) Load(path string) (*Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("open dataset: %w", err)
		metrics.RecordDatasetLoad(time.Since(start), "read", err)
		return nil, err
	}
	defer f.Close()

	ds, err := l.Decode(f)
	metrics.RecordDatasetLoad(time.Since(start), loadErrorType(err), err)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("path", path).
		Int("movies", len(ds.Catalog.Movies())).
		Int("serials", len(ds.Catalog.Serials())).
		Int("actors", len(ds.Catalog.Actors())).
		Int("users", ds.Users.Len()).
		Int("requests", len(ds.Requests)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return ds, nil
}

// Decode builds a dataset from one JSON document.
func (l *Loader) Decode(r io.Reader) (*Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return l.build(&doc)
}

func (l *Loader) build(doc *document) (*Dataset, error) {
	movies := make([]*models.Video, 0, len(doc.Movies))
	for _, m := range doc.Movies {
		if m.Title == "" {
			return nil, fmt.Errorf("%w: movie without title", models.ErrIntegrity)
		}
		movies = append(movies, models.NewMovie(m.Title, m.Year, m.Genres, m.Cast, m.Duration))
	}

	serials := make([]*models.Video, 0, len(doc.Serials))
	for _, s := range doc.Serials {
		if s.Title == "" {
			return nil, fmt.Errorf("%w: serial without title", models.ErrIntegrity)
		}
		if len(s.Seasons) == 0 {
			return nil, fmt.Errorf("%w: serial %q has no seasons", models.ErrIntegrity, s.Title)
		}
		seasons := make([]*models.Season, len(s.Seasons))
		for i, season := range s.Seasons {
			seasons[i] = &models.Season{Duration: season.Duration}
		}
		serials = append(serials, models.NewSerial(s.Title, s.Year, s.Genres, s.Cast, seasons))
	}

	actors := make([]*models.Actor, 0, len(doc.Actors))
	for _, a := range doc.Actors {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: actor without name", models.ErrIntegrity)
		}
		awards := a.Awards
		if awards == nil {
			awards = make(map[string]int)
		}
		actors = append(actors, &models.Actor{
			Name:              a.Name,
			CareerDescription: a.CareerDescription,
			Filmography:       a.Filmography,
			Awards:            awards,
		})
	}

	cat, err := catalog.New(movies, serials, actors)
	if err != nil {
		return nil, err
	}

	population := make([]*models.User, 0, len(doc.Users))
	for _, rec := range doc.Users {
		u, err := l.buildUser(rec)
		if err != nil {
			return nil, err
		}
		population = append(population, u)
	}

	store, err := users.NewStore(population)
	if err != nil {
		return nil, err
	}

	requests := make([]models.Request, 0, len(doc.Commands))
	for _, rec := range doc.Commands {
		requests = append(requests, decodeRequest(rec))
	}

	return &Dataset{Catalog: cat, Users: store, Requests: requests}, nil
}

// buildUser seeds a user from its record. Seed favorites that are not in the
// history, or are listed twice, are skipped with a warning.
func (l *Loader) buildUser(rec userRecord) (*models.User, error) {
	if rec.Username == "" {
		return nil, fmt.Errorf("%w: user without username", models.ErrIntegrity)
	}

	u := models.NewUser(rec.Username, models.ParseSubscription(rec.Subscription))
	for title, views := range rec.History {
		if views < 1 {
			views = 1
		}
		u.History[title] = views
	}

	for _, title := range rec.FavoriteMovies {
		if err := u.AddFavorite(title); err != nil {
			l.logger.Warn().
				Err(err).
				Str("username", rec.Username).
				Str("title", title).
				Msg("Skipping seed favorite")
		}
	}
	return u, nil
}

func loadErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrIntegrity):
		return "integrity"
	default:
		return "decode"
	}
}
