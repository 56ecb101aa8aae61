// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videodb/internal/logging"
	"github.com/tomtom215/videodb/internal/metrics"
	"github.com/tomtom215/videodb/internal/models"
	"github.com/tomtom215/videodb/internal/query"
	"github.com/tomtom215/videodb/internal/recommend"
	"github.com/tomtom215/videodb/internal/users"
	"github.com/tomtom215/videodb/internal/validation"
)

// Dispatcher routes each request to the engine that serves it and turns the
// outcome into a models.Result. Business failures never escape as errors.
//
// Dispatcher is not safe for concurrent use; requests must be applied one
// at a time and in order.
type Dispatcher struct {
	commands  *users.Executor
	recommend *recommend.Engine
	query     *query.Engine
}

// compile-time check that every request variant is handled.
var _ models.RequestVisitor = (*Dispatcher)(nil)

// New creates a dispatcher over the three engines.
func New(commands *users.Executor, rec *recommend.Engine, q *query.Engine) *Dispatcher {
	return &Dispatcher{
		commands:  commands,
		recommend: rec,
		query:     q,
	}
}

// Run applies requests in order and returns one result per request. A
// failing request never stops the batch; only cancellation of ctx does, in
// which case the results produced so far are returned with ctx.Err().
func (d *Dispatcher) Run(ctx context.Context, requests []models.Request) ([]models.Result, error) {
	start := time.Now()
	results := make([]models.Result, 0, len(requests))

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			logging.Ctx(ctx).Warn().
				Int("processed", len(results)).
				Int("remaining", len(requests)-len(results)).
				Msg("Batch interrupted")
			return results, err
		}
		results = append(results, d.Dispatch(ctx, req))
	}

	metrics.RecordBatch(len(results), time.Since(start))
	return results, nil
}

// Dispatch validates and applies one request.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.Request) models.Result {
	start := time.Now()
	ctx = logging.ContextWithActionID(ctx, req.ActionID())

	var result models.Result
	if verr := validation.ValidateStruct(req); verr != nil {
		result = failed(req, fmt.Errorf("%w: %s", models.ErrInvalidInput, verr.Error()))
	} else {
		result = req.Accept(d)
	}

	elapsed := time.Since(start)
	outcome := result.Outcome()
	metrics.RecordRequest(req.Kind().String(), req.SubKind(), outcome, elapsed)

	logger := logging.Ctx(ctx)
	var event *zerolog.Event
	if outcome == "error" {
		event = logger.Info().Err(result.Err)
	} else {
		event = logger.Debug()
	}
	event.
		Str("kind", req.Kind().String()).
		Str("sub_kind", req.SubKind()).
		Str("outcome", outcome).
		Dur("duration", elapsed).
		Msg("Request processed")

	return result
}

// VisitFavorite implements models.RequestVisitor.
func (d *Dispatcher) VisitFavorite(r *models.FavoriteCommand) models.Result {
	status, err := d.commands.Favorite(r.Username, r.Title)
	return commandResult(r, status, err)
}

// VisitView implements models.RequestVisitor.
func (d *Dispatcher) VisitView(r *models.ViewCommand) models.Result {
	status, err := d.commands.View(r.Username, r.Title)
	return commandResult(r, status, err)
}

// VisitRate implements models.RequestVisitor.
func (d *Dispatcher) VisitRate(r *models.RateCommand) models.Result {
	status, err := d.commands.Rate(r.Username, r.Title, r.Grade, r.Season)
	return commandResult(r, status, err)
}

// VisitQuery implements models.RequestVisitor.
func (d *Dispatcher) VisitQuery(r *models.QueryRequest) models.Result {
	titles, err := d.query.Run(r)
	return listResult(r, titles, err)
}

// VisitStandard implements models.RequestVisitor.
func (d *Dispatcher) VisitStandard(r *models.StandardRecommendation) models.Result {
	title, err := d.recommend.Standard(r.Username)
	return titleResult(r, title, err)
}

// VisitBestUnseen implements models.RequestVisitor.
func (d *Dispatcher) VisitBestUnseen(r *models.BestUnseenRecommendation) models.Result {
	title, err := d.recommend.BestUnseen(r.Username)
	return titleResult(r, title, err)
}

// VisitPopular implements models.RequestVisitor.
func (d *Dispatcher) VisitPopular(r *models.PopularRecommendation) models.Result {
	title, err := d.recommend.Popular(r.Username)
	return titleResult(r, title, err)
}

// VisitFavoriteRecommendation implements models.RequestVisitor.
func (d *Dispatcher) VisitFavoriteRecommendation(r *models.FavoriteRecommendation) models.Result {
	title, err := d.recommend.Favorite(r.Username)
	return titleResult(r, title, err)
}

// VisitSearch implements models.RequestVisitor.
func (d *Dispatcher) VisitSearch(r *models.SearchRecommendation) models.Result {
	titles, err := d.query.Search(r.Username, r.Genre)
	return listResult(r, titles, err)
}

// VisitMalformed implements models.RequestVisitor.
func (d *Dispatcher) VisitMalformed(r *models.MalformedRequest) models.Result {
	return failed(r, fmt.Errorf("%w: %s", models.ErrInvalidInput, r.Reason))
}

func base(r models.Request) models.Result {
	return models.Result{
		ActionID: r.ActionID(),
		Kind:     r.Kind(),
		SubKind:  r.SubKind(),
	}
}

func failed(r models.Request, err error) models.Result {
	res := base(r)
	res.Err = err
	return res
}

// commandResult carries the status text of a precondition failure so the
// caller sees the same message whether or not it inspects Err.
func commandResult(r models.Request, status string, err error) models.Result {
	res := base(r)
	if err != nil {
		res.Err = err
		if text, ok := models.StatusFor(err); ok {
			res.Status = text
		}
		return res
	}
	res.Status = status
	return res
}

// titleResult builds a single-title recommendation result. A premium-only
// rejection is reported as an empty result with the error attached.
func titleResult(r models.Request, title string, err error) models.Result {
	res := base(r)
	if err != nil {
		res.Err = err
		return res
	}
	res.Title = title
	return res
}

func listResult(r models.Request, titles []string, err error) models.Result {
	res := base(r)
	if err != nil {
		res.Err = err
		return res
	}
	if titles == nil {
		titles = []string{}
	}
	res.Titles = titles
	return res
}
