// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"errors"
	"testing"
)

func TestParseSubscription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Subscription
	}{
		{"PREMIUM", SubscriptionPremium},
		{"premium", SubscriptionPremium},
		{" Premium ", SubscriptionPremium},
		{"BASIC", SubscriptionStandard},
		{"STANDARD", SubscriptionStandard},
		{"", SubscriptionStandard},
	}

	for _, tt := range tests {
		if got := ParseSubscription(tt.input); got != tt.want {
			t.Errorf("ParseSubscription(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestUserFavorite(t *testing.T) {
	t.Parallel()

	u := NewUser("alice", SubscriptionStandard)

	if err := u.AddFavorite("A"); !errors.Is(err, ErrNotInHistory) {
		t.Fatalf("AddFavorite before view error = %v, want ErrNotInHistory", err)
	}

	u.View("A")
	if err := u.AddFavorite("A"); err != nil {
		t.Fatalf("AddFavorite after view error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := u.AddFavorite("A"); !errors.Is(err, ErrAlreadyFavorite) {
			t.Errorf("repeat AddFavorite error = %v, want ErrAlreadyFavorite", err)
		}
	}
	if len(u.Favorites) != 1 {
		t.Errorf("Favorites = %v, want exactly one entry", u.Favorites)
	}
}

func TestUserView(t *testing.T) {
	t.Parallel()

	u := NewUser("bob", SubscriptionPremium)
	if got := u.View("A"); got != 1 {
		t.Errorf("first View() = %d, want 1", got)
	}
	if got := u.View("A"); got != 2 {
		t.Errorf("second View() = %d, want 2", got)
	}
	if !u.HasSeen("A") || u.HasSeen("B") {
		t.Errorf("HasSeen mismatch: history = %v", u.History)
	}
}

func TestUserMarkRated(t *testing.T) {
	t.Parallel()

	u := NewUser("carol", SubscriptionStandard)

	if err := u.MarkRated("Dark", 1); err != nil {
		t.Fatalf("MarkRated(Dark, 1) error = %v", err)
	}
	if err := u.MarkRated("Dark", 2); err != nil {
		t.Fatalf("MarkRated(Dark, 2) error = %v", err)
	}
	if err := u.MarkRated("Dark", 1); !errors.Is(err, ErrAlreadyRated) {
		t.Errorf("repeat MarkRated error = %v, want ErrAlreadyRated", err)
	}
	if got := u.RatingsGiven(); got != 2 {
		t.Errorf("RatingsGiven() = %d, want 2", got)
	}
}
