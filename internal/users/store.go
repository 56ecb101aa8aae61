// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package users

import (
	"fmt"

	"github.com/tomtom215/videodb/internal/models"
)

// Reader is the read-only view of the user population handed to the engines.
type Reader interface {
	// User looks up a user by username.
	User(username string) (*models.User, error)

	// All returns every user in load order.
	All() []*models.User
}

// Store owns the user population for one run.
type Store struct {
	users      []*models.User
	byUsername map[string]*models.User
}

// NewStore builds the store and assigns load-order indexes. A duplicate
// username is an integrity failure.
func NewStore(population []*models.User) (*Store, error) {
	s := &Store{
		users:      population,
		byUsername: make(map[string]*models.User, len(population)),
	}
	for i, u := range population {
		if _, exists := s.byUsername[u.Username]; exists {
			return nil, fmt.Errorf("%w: duplicate username %q", models.ErrIntegrity, u.Username)
		}
		u.Index = i
		s.byUsername[u.Username] = u
	}
	return s, nil
}

// User looks up a user by username.
func (s *Store) User(username string) (*models.User, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %q", models.ErrNotFound, username)
	}
	return u, nil
}

// All returns every user in load order.
func (s *Store) All() []*models.User {
	return s.users
}

// Len returns the number of users.
func (s *Store) Len() int {
	return len(s.users)
}
