// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/catalog"
	"github.com/tomtom215/videodb/internal/logging"
	"github.com/tomtom215/videodb/internal/metrics"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/query"
	"github.com/tomtom215/videodb/internal/recommend"
	"github.com/tomtom215/videodb/internal/users"
)

// fixture builds a dispatcher over two action movies rated 4.0 (A) and 4.5
// (B), a drama serial, a standard user "std" and a premium user "prem".
func fixture(t *testing.T) (*Dispatcher, *users.Store) {
	t.Helper()

	a := models.NewMovie("A", 2001, []string{"Action"}, nil, 100)
	b := models.NewMovie("B", 2002, []string{"Action"}, nil, 110)
	s := models.NewSerial("S", 2010, []string{"Drama"}, nil, []*models.Season{{Duration: 40}, {Duration: 45}})
	if err := a.AddRating(1, 4.0); err != nil {
		t.Fatalf("seed rating: %v", err)
	}
	if err := b.AddRating(1, 4.5); err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	cat, err := catalog.New([]*models.Video{a, b}, []*models.Video{s}, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	store, err := users.NewStore([]*models.User{
		models.NewUser("std", models.SubscriptionStandard),
		models.NewUser("prem", models.SubscriptionPremium),
	})
	if err != nil {
		t.Fatalf("users.NewStore() error = %v", err)
	}

	logger := zerolog.Nop()
	d := New(
		users.NewExecutor(store, cat, logger),
		recommend.NewEngine(cat, store, logger),
		query.NewEngine(cat, store, logger),
	)
	return d, store
}

func TestDispatch_FavoriteLifecycle(t *testing.T) {
	d, store := fixture(t)
	ctx := context.Background()

	steps := []struct {
		req     models.Request
		status  string
		outcome string
	}{
		{&models.FavoriteCommand{ID: 1, Username: "std", Title: "A"}, "Haven't been seen yet!", "rejected"},
		{&models.ViewCommand{ID: 2, Username: "std", Title: "A"}, "Viewed! Total views: 1", "ok"},
		{&models.FavoriteCommand{ID: 3, Username: "std", Title: "A"}, "Added to Favorites!", "ok"},
		{&models.FavoriteCommand{ID: 4, Username: "std", Title: "A"}, "Already in Favorites!", "rejected"},
		{&models.ViewCommand{ID: 5, Username: "std", Title: "A"}, "Viewed! Total views: 2", "ok"},
	}

	for _, step := range steps {
		res := d.Dispatch(ctx, step.req)
		if res.ActionID != step.req.ActionID() {
			t.Errorf("action %d: ActionID = %d", step.req.ActionID(), res.ActionID)
		}
		if res.Status != step.status {
			t.Errorf("action %d: Status = %q, want %q", step.req.ActionID(), res.Status, step.status)
		}
		if got := res.Outcome(); got != step.outcome {
			t.Errorf("action %d: Outcome() = %q, want %q", step.req.ActionID(), got, step.outcome)
		}
	}

	u, _ := store.User("std")
	if len(u.Favorites) != 1 {
		t.Errorf("favorites = %v, want exactly one entry", u.Favorites)
	}
}

func TestDispatch_Rate(t *testing.T) {
	d, _ := fixture(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, &models.RateCommand{ID: 1, Username: "std", Title: "S", Grade: 3, Season: 1})
	if res.Status != "Not seen!" || !errors.Is(res.Err, models.ErrNotSeen) {
		t.Errorf("rate unseen = (%q, %v), want Not seen!", res.Status, res.Err)
	}

	d.Dispatch(ctx, &models.ViewCommand{ID: 2, Username: "std", Title: "S"})

	res = d.Dispatch(ctx, &models.RateCommand{ID: 3, Username: "std", Title: "S", Grade: 3, Season: 2})
	if res.Status != "Added rating!" {
		t.Errorf("rate = %q, want Added rating!", res.Status)
	}

	res = d.Dispatch(ctx, &models.RateCommand{ID: 4, Username: "std", Title: "S", Grade: 5, Season: 2})
	if res.Status != "Already rated!" {
		t.Errorf("second rate = %q, want Already rated!", res.Status)
	}

	res = d.Dispatch(ctx, &models.RateCommand{ID: 5, Username: "std", Title: "S", Grade: 9, Season: 1})
	if !errors.Is(res.Err, models.ErrInvalidInput) {
		t.Errorf("grade 9 error = %v, want ErrInvalidInput", res.Err)
	}
	if res.Outcome() != "error" {
		t.Errorf("grade 9 outcome = %q, want error", res.Outcome())
	}
}

func TestDispatch_Recommendations(t *testing.T) {
	d, _ := fixture(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, &models.BestUnseenRecommendation{ID: 1, Username: "std"})
	if res.Title != "B" {
		t.Errorf("best unseen = %q, want B", res.Title)
	}

	d.Dispatch(ctx, &models.ViewCommand{ID: 2, Username: "std", Title: "B"})

	res = d.Dispatch(ctx, &models.BestUnseenRecommendation{ID: 3, Username: "std"})
	if res.Title != "A" {
		t.Errorf("best unseen after viewing B = %q, want A", res.Title)
	}

	res = d.Dispatch(ctx, &models.StandardRecommendation{ID: 4, Username: "std"})
	if res.Title != "A" {
		t.Errorf("standard = %q, want A", res.Title)
	}
}

func TestDispatch_PremiumGating(t *testing.T) {
	d, _ := fixture(t)
	ctx := context.Background()

	gated := []models.Request{
		&models.PopularRecommendation{ID: 1, Username: "std"},
		&models.FavoriteRecommendation{ID: 2, Username: "std"},
		&models.SearchRecommendation{ID: 3, Username: "std", Genre: "Action"},
	}
	for _, req := range gated {
		res := d.Dispatch(ctx, req)
		if !errors.Is(res.Err, models.ErrPremiumOnly) {
			t.Errorf("%s: error = %v, want ErrPremiumOnly", req.SubKind(), res.Err)
		}
		if res.Title != "" || len(res.Titles) != 0 {
			t.Errorf("%s: result should be empty, got %q %v", req.SubKind(), res.Title, res.Titles)
		}
		if res.Outcome() != "rejected" {
			t.Errorf("%s: outcome = %q, want rejected", req.SubKind(), res.Outcome())
		}
	}

	res := d.Dispatch(ctx, &models.SearchRecommendation{ID: 4, Username: "prem", Genre: "Action"})
	if res.Err != nil {
		t.Fatalf("premium search error = %v", res.Err)
	}
	if len(res.Titles) != 2 || res.Titles[0] != "A" || res.Titles[1] != "B" {
		t.Errorf("premium search = %v, want [A B]", res.Titles)
	}
}

func TestDispatch_Failures(t *testing.T) {
	d, _ := fixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.Request
		wantErr error
	}{
		{"unknown user", &models.ViewCommand{ID: 1, Username: "ghost", Title: "A"}, models.ErrNotFound},
		{"unknown title", &models.ViewCommand{ID: 2, Username: "std", Title: "Z"}, models.ErrNotFound},
		{"blank username", &models.StandardRecommendation{ID: 3, Username: "  "}, models.ErrInvalidInput},
		{"bad sort", &models.QueryRequest{ID: 4, ObjectType: "movies", Criteria: "ratings", Sort: "up"}, models.ErrInvalidInput},
		{"unknown criteria", &models.QueryRequest{ID: 6, ObjectType: "movies", Criteria: "height", Sort: "asc"}, models.ErrInvalidInput},
		{"malformed", &models.MalformedRequest{ID: 5, Family: models.RequestUnknown, Reason: "bad"}, models.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Dispatch(ctx, tt.req)
			if !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("error = %v, want %v", res.Err, tt.wantErr)
			}
			if res.Outcome() != "error" {
				t.Errorf("outcome = %q, want error", res.Outcome())
			}
		})
	}
}

func TestDispatch_InputStringsNeverBecomeLabels(t *testing.T) {
	d, _ := fixture(t)
	ctx := context.Background()

	unknown := metrics.RequestsTotal.WithLabelValues("query", "unknown", "error")
	malformed := metrics.RequestsTotal.WithLabelValues("unknown", "unknown", "error")
	beforeQuery, beforeMalformed := testutil.ToFloat64(unknown), testutil.ToFloat64(malformed)

	d.Dispatch(ctx, &models.QueryRequest{ID: 1, ObjectType: "movies", Criteria: "x-1", Sort: "asc"})
	d.Dispatch(ctx, &models.QueryRequest{ID: 2, ObjectType: "movies", Criteria: "x-2", Sort: "asc"})
	d.Dispatch(ctx, &models.MalformedRequest{ID: 3, Family: models.RequestUnknown, Type: "x-3", Reason: "bad"})

	if got := testutil.ToFloat64(unknown) - beforeQuery; got != 2 {
		t.Errorf("query/unknown increments = %v, want 2", got)
	}
	if got := testutil.ToFloat64(malformed) - beforeMalformed; got != 1 {
		t.Errorf("unknown/unknown increments = %v, want 1", got)
	}
	for _, sub := range []string{"x-1", "x-2", "x-3"} {
		for _, kind := range []string{"query", "unknown"} {
			if metrics.RequestsTotal.DeleteLabelValues(kind, sub, "error") {
				t.Errorf("sub_kind %q leaked into the %s series", sub, kind)
			}
		}
	}
}

func TestDispatch_LogsOneEventPerRequest(t *testing.T) {
	d, _ := fixture(t)

	var buf bytes.Buffer
	ctx := logging.ContextWithLogger(context.Background(), zerolog.New(&buf))

	d.Dispatch(ctx, &models.ViewCommand{ID: 1, Username: "ghost", Title: "A"})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("failed request logged %d entries, want 1: %s", len(lines), buf.String())
	}
	for _, want := range []string{`"level":"info"`, `"error":`, `"outcome":"error"`, `"action_id":1`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("log entry missing %s: %s", want, lines[0])
		}
	}

	// Successful requests log at debug, below the default info level.
	buf.Reset()
	d.Dispatch(ctx, &models.ViewCommand{ID: 2, Username: "std", Title: "A"})
	if buf.Len() != 0 {
		t.Errorf("successful request logged at info: %s", buf.String())
	}
}

func TestRun_KeepsOrderAndContinues(t *testing.T) {
	d, _ := fixture(t)

	reqs := []models.Request{
		&models.ViewCommand{ID: 10, Username: "ghost", Title: "A"},
		&models.ViewCommand{ID: 11, Username: "std", Title: "A"},
		&models.QueryRequest{ID: 12, ObjectType: "movies", Criteria: "ratings", Sort: "desc"},
	}

	results, err := d.Run(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("results = %d, want %d", len(results), len(reqs))
	}
	for i, res := range results {
		if res.ActionID != reqs[i].ActionID() {
			t.Errorf("results[%d].ActionID = %d, want %d", i, res.ActionID, reqs[i].ActionID())
		}
	}
	if results[1].Status != "Viewed! Total views: 1" {
		t.Errorf("second result = %q", results[1].Status)
	}
	if q := results[2].Titles; len(q) != 2 || q[0] != "B" || q[1] != "A" {
		t.Errorf("query result = %v, want [B A]", q)
	}
}

func TestRun_Cancelled(t *testing.T) {
	d, _ := fixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := d.Run(ctx, []models.Request{&models.ViewCommand{ID: 1, Username: "std", Title: "A"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}
