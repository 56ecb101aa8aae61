// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package recommend

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/users"
)

// fixture wires an engine over a small catalog and population.
type fixture struct {
	engine  *Engine
	catalog *catalog.Catalog
	store   *users.Store
}

func newFixture(t *testing.T, movies, serials []*models.Video, population ...*models.User) *fixture {
	t.Helper()

	c, err := catalog.New(movies, serials, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	store, err := users.NewStore(population)
	if err != nil {
		t.Fatalf("users.NewStore() error = %v", err)
	}
	return &fixture{
		engine:  NewEngine(c, store, zerolog.Nop()),
		catalog: c,
		store:   store,
	}
}

func movie(title string, genres ...string) *models.Video {
	return models.NewMovie(title, 2000, genres, nil, 100)
}

func serial(title string, genres ...string) *models.Video {
	return models.NewSerial(title, 2000, genres, nil, []*models.Season{{Duration: 40}})
}

func user(name string, tier models.Subscription, views map[string]int) *models.User {
	u := models.NewUser(name, tier)
	for title, n := range views {
		for i := 0; i < n; i++ {
			u.View(title)
		}
	}
	return u
}

func rate(t *testing.T, f *fixture, title string, grades ...float64) {
	t.Helper()
	v, err := f.catalog.Video(title)
	if err != nil {
		t.Fatalf("Video(%s) error = %v", title, err)
	}
	for _, g := range grades {
		if err := v.AddRating(1, g); err != nil {
			t.Fatalf("AddRating(%s) error = %v", title, err)
		}
	}
}

func TestStandard(t *testing.T) {
	alice := user("alice", models.SubscriptionStandard, map[string]int{"M1": 1})
	f := newFixture(t,
		[]*models.Video{movie("M1"), movie("M2")},
		[]*models.Video{serial("S1")},
		alice,
	)

	got, err := f.engine.Standard("alice")
	if err != nil || got != "M2" {
		t.Errorf("Standard() = (%q, %v), want M2", got, err)
	}

	alice.View("M2")
	if got, _ := f.engine.Standard("alice"); got != "S1" {
		t.Errorf("Standard() after viewing movies = %q, want S1", got)
	}

	alice.View("S1")
	if got, _ := f.engine.Standard("alice"); got != "" {
		t.Errorf("Standard() with everything seen = %q, want empty", got)
	}
}

func TestBestUnseen_Scenario(t *testing.T) {
	alice := user("alice", models.SubscriptionStandard, nil)
	f := newFixture(t, []*models.Video{movie("A", "Action"), movie("B", "Action")}, nil, alice)

	rate(t, f, "A", 4.0)
	rate(t, f, "B", 4.0, 5.0)

	if got, err := f.engine.BestUnseen("alice"); err != nil || got != "B" {
		t.Fatalf("BestUnseen() = (%q, %v), want B", got, err)
	}

	alice.View("B")
	if got, _ := f.engine.BestUnseen("alice"); got != "A" {
		t.Errorf("BestUnseen() after viewing B = %q, want A", got)
	}
}

func TestBestUnseen_TiesGoToLowerIndex(t *testing.T) {
	alice := user("alice", models.SubscriptionStandard, nil)
	f := newFixture(t,
		[]*models.Video{movie("M1"), movie("M2")},
		[]*models.Video{serial("S1")},
		alice,
	)

	rate(t, f, "M2", 3)
	rate(t, f, "S1", 3)

	// Deterministic across repeated calls with unchanged state.
	for i := 0; i < 3; i++ {
		if got, _ := f.engine.BestUnseen("alice"); got != "M2" {
			t.Errorf("BestUnseen() call %d = %q, want M2", i, got)
		}
	}

	alice.View("M2")
	if got, _ := f.engine.BestUnseen("alice"); got != "S1" {
		t.Errorf("BestUnseen() = %q, want S1", got)
	}

	alice.View("S1")
	if got, _ := f.engine.BestUnseen("alice"); got != "M1" {
		t.Errorf("BestUnseen() = %q, want unrated M1", got)
	}
}

func TestPopular_ExhaustsGenreWithoutUnseenVideo(t *testing.T) {
	// Comedy: 10 views, Action: 5 views. The premium user has seen every
	// comedy, so the popular pick has to come from Action.
	premium := user("p", models.SubscriptionPremium, map[string]int{"C1": 1})
	other := user("o", models.SubscriptionStandard, map[string]int{"C1": 9, "A1": 5})
	f := newFixture(t, []*models.Video{movie("C1", "Comedy"), movie("A1", "Action")}, nil, premium, other)

	got, err := f.engine.Popular("p")
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if got != "A1" {
		t.Errorf("Popular() = %q, want A1", got)
	}
}

func TestPopular_MoviesBeforeSerials(t *testing.T) {
	premium := user("p", models.SubscriptionPremium, nil)
	other := user("o", models.SubscriptionStandard, map[string]int{"S1": 4, "M2": 1})
	f := newFixture(t,
		[]*models.Video{movie("M1", "Drama"), movie("M2", "Comedy")},
		[]*models.Video{serial("S1", "Comedy")},
		premium, other,
	)

	// Comedy (5) outranks Drama (0); the unseen comedy movie wins over the
	// more viewed comedy serial.
	if got, _ := f.engine.Popular("p"); got != "M2" {
		t.Errorf("Popular() = %q, want M2", got)
	}

	premium.View("M2")
	if got, _ := f.engine.Popular("p"); got != "S1" {
		t.Errorf("Popular() = %q, want serial S1", got)
	}

	premium.View("S1")
	if got, _ := f.engine.Popular("p"); got != "M1" {
		t.Errorf("Popular() = %q, want M1 from the next genre", got)
	}

	premium.View("M1")
	if got, err := f.engine.Popular("p"); got != "" || err != nil {
		t.Errorf("Popular() with ranking exhausted = (%q, %v), want empty", got, err)
	}
}

func TestFavorite(t *testing.T) {
	premium := user("p", models.SubscriptionPremium, map[string]int{"M1": 1})
	u1 := user("u1", models.SubscriptionStandard, map[string]int{"M1": 1, "M2": 1, "S1": 1})
	u2 := user("u2", models.SubscriptionStandard, map[string]int{"M1": 1, "S1": 1})
	for _, fav := range []struct {
		u     *models.User
		title string
	}{{u1, "M1"}, {u1, "M2"}, {u1, "S1"}, {u2, "M1"}, {u2, "S1"}, {premium, "M1"}} {
		if err := fav.u.AddFavorite(fav.title); err != nil {
			t.Fatalf("AddFavorite(%s) error = %v", fav.title, err)
		}
	}

	f := newFixture(t,
		[]*models.Video{movie("M1"), movie("M2"), movie("M3")},
		[]*models.Video{serial("S1")},
		premium, u1, u2,
	)

	// M1: 3 (seen), S1: 2, M2: 1, M3: 0.
	if got, err := f.engine.Favorite("p"); err != nil || got != "S1" {
		t.Fatalf("Favorite() = (%q, %v), want S1", got, err)
	}

	premium.View("S1")
	if got, _ := f.engine.Favorite("p"); got != "M2" {
		t.Errorf("Favorite() = %q, want M2", got)
	}

	premium.View("M2")
	if got, _ := f.engine.Favorite("p"); got != "" {
		t.Errorf("Favorite() = %q, want empty since M3 has no favorites", got)
	}
}

func TestFavorite_TiesGoToLowerIndex(t *testing.T) {
	premium := user("p", models.SubscriptionPremium, map[string]int{"M1": 1})
	u1 := user("u1", models.SubscriptionStandard, map[string]int{"S1": 1, "M2": 1})

	// S1 (index 2) is favorited before M2 (index 1); both end on one vote.
	for _, title := range []string{"S1", "M2"} {
		if err := u1.AddFavorite(title); err != nil {
			t.Fatalf("AddFavorite(%s) error = %v", title, err)
		}
	}

	f := newFixture(t,
		[]*models.Video{movie("M1"), movie("M2")},
		[]*models.Video{serial("S1")},
		premium, u1,
	)

	for i := 0; i < 5; i++ {
		if got, err := f.engine.Favorite("p"); err != nil || got != "M2" {
			t.Fatalf("call %d: Favorite() = (%q, %v), want M2", i, got, err)
		}
	}
}

func TestPremiumGating(t *testing.T) {
	basic := user("basic", models.SubscriptionStandard, nil)
	other := user("o", models.SubscriptionStandard, map[string]int{"M1": 3})
	_ = other.AddFavorite("M1")
	f := newFixture(t, []*models.Video{movie("M1", "Comedy")}, nil, basic, other)

	strategies := map[string]func(string) (string, error){
		"popular":  f.engine.Popular,
		"favorite": f.engine.Favorite,
	}

	for name, run := range strategies {
		t.Run(name, func(t *testing.T) {
			got, err := run("basic")
			if got != "" {
				t.Errorf("%s() = %q, want empty for standard tier", name, got)
			}
			if !errors.Is(err, models.ErrPremiumOnly) {
				t.Errorf("%s() error = %v, want ErrPremiumOnly", name, err)
			}
		})
	}
}

func TestUnknownUser(t *testing.T) {
	f := newFixture(t, []*models.Video{movie("M1")}, nil)

	strategies := map[string]func(string) (string, error){
		"standard":    f.engine.Standard,
		"best_unseen": f.engine.BestUnseen,
		"popular":     f.engine.Popular,
		"favorite":    f.engine.Favorite,
	}

	for name, run := range strategies {
		if _, err := run("ghost"); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("%s(ghost) error = %v, want ErrNotFound", name, err)
		}
	}
}
