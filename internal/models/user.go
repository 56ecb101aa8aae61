// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import "strings"

// Subscription is a user's tier. Several strategies are premium-only.
type Subscription int

const (
	// SubscriptionStandard is the basic tier.
	SubscriptionStandard Subscription = iota
	// SubscriptionPremium unlocks popular, favorite and search recommendations.
	SubscriptionPremium
)

// String returns the tier name.
func (s Subscription) String() string {
	if s == SubscriptionPremium {
		return "premium"
	}
	return "standard"
}

// ParseSubscription converts a dataset tier name. Anything other than
// "premium" (case-insensitive) is the standard tier.
func ParseSubscription(s string) Subscription {
	if strings.EqualFold(strings.TrimSpace(s), "premium") {
		return SubscriptionPremium
	}
	return SubscriptionStandard
}

// User holds the per-user mutable state.
//
// Fields are exported for read access by the engines; mutation goes through
// the methods below so the favorites and rating invariants always hold.
type User struct {
	// Username uniquely identifies the user.
	Username string `json:"username"`

	// Subscription is the user's tier.
	Subscription Subscription `json:"subscription"`

	// History maps title to number of views. A title is "seen" when present.
	History map[string]int `json:"history"`

	// Favorites holds favorited titles in the order they were added.
	Favorites []string `json:"favorites"`

	// Index is the stable load-order index.
	Index int `json:"index"`

	rated        map[string]map[int]struct{}
	ratingsGiven int
}

// NewUser creates a user with empty history and favorites.
func NewUser(username string, tier Subscription) *User {
	return &User{
		Username:     username,
		Subscription: tier,
		History:      make(map[string]int),
		Favorites:    make([]string, 0),
		rated:        make(map[string]map[int]struct{}),
	}
}

// IsPremium reports whether the user has the premium tier.
func (u *User) IsPremium() bool {
	return u.Subscription == SubscriptionPremium
}

// HasSeen reports whether the title is in the user's history.
func (u *User) HasSeen(title string) bool {
	_, ok := u.History[title]
	return ok
}

// IsFavorite reports whether the title is already favorited.
func (u *User) IsFavorite(title string) bool {
	for _, f := range u.Favorites {
		if f == title {
			return true
		}
	}
	return false
}

// View increments the view count for a title and returns the new count.
func (u *User) View(title string) int {
	u.History[title]++
	return u.History[title]
}

// AddFavorite appends a seen title to the favorites.
func (u *User) AddFavorite(title string) error {
	if u.IsFavorite(title) {
		return ErrAlreadyFavorite
	}
	if !u.HasSeen(title) {
		return ErrNotInHistory
	}
	u.Favorites = append(u.Favorites, title)
	return nil
}

// HasRated reports whether the (title, season) pair was already rated.
func (u *User) HasRated(title string, season int) bool {
	_, ok := u.rated[title][season]
	return ok
}

// MarkRated records a rating for (title, season) and bumps the ratings-given
// counter. It does not touch the video.
func (u *User) MarkRated(title string, season int) error {
	if u.HasRated(title, season) {
		return ErrAlreadyRated
	}
	seasons, ok := u.rated[title]
	if !ok {
		seasons = make(map[int]struct{})
		u.rated[title] = seasons
	}
	seasons[season] = struct{}{}
	u.ratingsGiven++
	return nil
}

// RatingsGiven returns the number of ratings this user submitted.
func (u *User) RatingsGiven() int {
	return u.ratingsGiven
}
