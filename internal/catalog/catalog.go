// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package catalog

import (
	"fmt"

	"github.com/tomtom215/videodb/internal/models"
)

// Reader is the read-only view of the catalog handed to the engines.
type Reader interface {
	// Movies returns movies in insertion order.
	Movies() []*models.Video

	// Serials returns serials in insertion order.
	Serials() []*models.Video

	// Videos returns movies then serials, in insertion order.
	Videos() []*models.Video

	// Actors returns actors in load order.
	Actors() []*models.Actor

	// Video looks up a video by title.
	Video(title string) (*models.Video, error)
}

// Catalog owns the video and actor collections for one run.
type Catalog struct {
	movies  []*models.Video
	serials []*models.Video
	all     []*models.Video
	byTitle map[string]*models.Video

	actors []*models.Actor
}

// New builds a catalog and assigns insertion indexes: movies take 0..m-1,
// serials continue from m. Duplicate titles or actor names are integrity
// failures.
func New(movies, serials []*models.Video, actors []*models.Actor) (*Catalog, error) {
	c := &Catalog{
		movies:  movies,
		serials: serials,
		all:     make([]*models.Video, 0, len(movies)+len(serials)),
		byTitle: make(map[string]*models.Video, len(movies)+len(serials)),
		actors:  actors,
	}

	for _, group := range [][]*models.Video{movies, serials} {
		for _, v := range group {
			if _, exists := c.byTitle[v.Title]; exists {
				return nil, fmt.Errorf("%w: duplicate video title %q", models.ErrIntegrity, v.Title)
			}
			v.Index = len(c.all)
			c.byTitle[v.Title] = v
			c.all = append(c.all, v)
		}
	}

	names := make(map[string]struct{}, len(actors))
	for i, a := range actors {
		if _, exists := names[a.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate actor name %q", models.ErrIntegrity, a.Name)
		}
		a.Index = i
		names[a.Name] = struct{}{}
	}

	return c, nil
}

// Movies returns movies in insertion order.
func (c *Catalog) Movies() []*models.Video { return c.movies }

// Serials returns serials in insertion order.
func (c *Catalog) Serials() []*models.Video { return c.serials }

// Videos returns movies then serials, in insertion order.
func (c *Catalog) Videos() []*models.Video { return c.all }

// Actors returns actors in load order.
func (c *Catalog) Actors() []*models.Actor { return c.actors }

// Video looks up a video by title.
func (c *Catalog) Video(title string) (*models.Video, error) {
	v, ok := c.byTitle[title]
	if !ok {
		return nil, fmt.Errorf("%w: video %q", models.ErrNotFound, title)
	}
	return v, nil
}
