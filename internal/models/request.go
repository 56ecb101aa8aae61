// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// RequestKind is the top-level action family of a request.
type RequestKind int

const (
	// RequestCommand mutates user state.
	RequestCommand RequestKind = iota
	// RequestQuery searches one entity collection.
	RequestQuery
	// RequestRecommendation produces a title or list for a user.
	RequestRecommendation

	// RequestUnknown marks an input record whose action family is not recognised.
	RequestUnknown RequestKind = -1
)

// String returns the action family name as it appears in the dataset.
func (k RequestKind) String() string {
	switch k {
	case RequestCommand:
		return "command"
	case RequestQuery:
		return "query"
	case RequestRecommendation:
		return "recommendation"
	default:
		return "unknown"
	}
}

// Request is the closed set of actions the engine accepts. Every variant is
// declared in this file and implements Accept by calling exactly one
// RequestVisitor method, so a dispatcher that implements RequestVisitor
// handles every variant or fails to compile.
type Request interface {
	// ActionID is the id the result is tagged with.
	ActionID() int

	// Kind is the action family.
	Kind() RequestKind

	// SubKind names the concrete action within its family.
	SubKind() string

	// Accept routes the request to the matching visitor method.
	Accept(v RequestVisitor) Result

	sealed()
}

// RequestVisitor handles every request variant.
type RequestVisitor interface {
	VisitFavorite(r *FavoriteCommand) Result
	VisitView(r *ViewCommand) Result
	VisitRate(r *RateCommand) Result
	VisitQuery(r *QueryRequest) Result
	VisitStandard(r *StandardRecommendation) Result
	VisitBestUnseen(r *BestUnseenRecommendation) Result
	VisitPopular(r *PopularRecommendation) Result
	VisitFavoriteRecommendation(r *FavoriteRecommendation) Result
	VisitSearch(r *SearchRecommendation) Result
	VisitMalformed(r *MalformedRequest) Result
}

// FavoriteCommand adds a seen title to a user's favorites.
type FavoriteCommand struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
	Title    string `json:"title" validate:"required,notblank"`
}

// ViewCommand records one more view of a title.
type ViewCommand struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
	Title    string `json:"title" validate:"required,notblank"`
}

// RateCommand grades one season of a seen video.
type RateCommand struct {
	ID       int     `json:"action_id"`
	Username string  `json:"username" validate:"required,notblank"`
	Title    string  `json:"title" validate:"required,notblank"`
	Grade    float64 `json:"grade" validate:"gte=1,lte=5"`
	Season   int     `json:"season" validate:"gte=0"`
}

// QueryFilters are the filter groups of a query. Every value in a group must
// match (conjunctive); an empty group matches everything.
type QueryFilters struct {
	// Years filters videos by release year.
	Years []int `json:"years,omitempty"`

	// Genres filters videos by genre.
	Genres []string `json:"genres,omitempty"`

	// Words filters actors by career-description keywords.
	Words []string `json:"words,omitempty"`

	// Awards filters actors by awards won.
	Awards []string `json:"awards,omitempty"`
}

// QueryRequest filters, sorts and truncates one collection.
type QueryRequest struct {
	ID         int          `json:"action_id"`
	ObjectType string       `json:"object_type" validate:"oneof=actors movies shows users"`
	Criteria   string       `json:"criteria" validate:"required,oneof=average awards filter_description ratings favorite longest most_viewed num_ratings"`
	Sort       string       `json:"sort_type" validate:"oneof=asc desc"`
	Filters    QueryFilters `json:"filters"`
	Limit      int          `json:"number"`
}

// StandardRecommendation asks for the first unseen video.
type StandardRecommendation struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
}

// BestUnseenRecommendation asks for the best-rated unseen video.
type BestUnseenRecommendation struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
}

// PopularRecommendation asks for an unseen video of the most viewed genre.
type PopularRecommendation struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
}

// FavoriteRecommendation asks for the most favorited unseen video.
type FavoriteRecommendation struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
}

// SearchRecommendation lists unseen videos of a genre by ascending rating.
type SearchRecommendation struct {
	ID       int    `json:"action_id"`
	Username string `json:"username" validate:"required,notblank"`
	Genre    string `json:"genre" validate:"required,notblank"`
}

// MalformedRequest stands in for an input record that could not be decoded
// into any other variant. It always yields an invalid-input result.
type MalformedRequest struct {
	ID     int         `json:"action_id"`
	Family RequestKind `json:"kind"`
	Type   string      `json:"type"`
	Reason string      `json:"reason"`
}

func (r *FavoriteCommand) ActionID() int                  { return r.ID }
func (r *FavoriteCommand) Kind() RequestKind              { return RequestCommand }
func (r *FavoriteCommand) SubKind() string                { return "favorite" }
func (r *FavoriteCommand) Accept(v RequestVisitor) Result { return v.VisitFavorite(r) }
func (r *FavoriteCommand) sealed()                        {}

func (r *ViewCommand) ActionID() int                  { return r.ID }
func (r *ViewCommand) Kind() RequestKind              { return RequestCommand }
func (r *ViewCommand) SubKind() string                { return "view" }
func (r *ViewCommand) Accept(v RequestVisitor) Result { return v.VisitView(r) }
func (r *ViewCommand) sealed()                        {}

func (r *RateCommand) ActionID() int                  { return r.ID }
func (r *RateCommand) Kind() RequestKind              { return RequestCommand }
func (r *RateCommand) SubKind() string                { return "rating" }
func (r *RateCommand) Accept(v RequestVisitor) Result { return v.VisitRate(r) }
func (r *RateCommand) sealed()                        {}

func (r *QueryRequest) ActionID() int                  { return r.ID }
func (r *QueryRequest) Kind() RequestKind              { return RequestQuery }
func (r *QueryRequest) SubKind() string                { return r.Criteria }
func (r *QueryRequest) Accept(v RequestVisitor) Result { return v.VisitQuery(r) }
func (r *QueryRequest) sealed()                        {}

func (r *StandardRecommendation) ActionID() int                  { return r.ID }
func (r *StandardRecommendation) Kind() RequestKind              { return RequestRecommendation }
func (r *StandardRecommendation) SubKind() string                { return "standard" }
func (r *StandardRecommendation) Accept(v RequestVisitor) Result { return v.VisitStandard(r) }
func (r *StandardRecommendation) sealed()                        {}

func (r *BestUnseenRecommendation) ActionID() int                  { return r.ID }
func (r *BestUnseenRecommendation) Kind() RequestKind              { return RequestRecommendation }
func (r *BestUnseenRecommendation) SubKind() string                { return "best_unseen" }
func (r *BestUnseenRecommendation) Accept(v RequestVisitor) Result { return v.VisitBestUnseen(r) }
func (r *BestUnseenRecommendation) sealed()                        {}

func (r *PopularRecommendation) ActionID() int                  { return r.ID }
func (r *PopularRecommendation) Kind() RequestKind              { return RequestRecommendation }
func (r *PopularRecommendation) SubKind() string                { return "popular" }
func (r *PopularRecommendation) Accept(v RequestVisitor) Result { return v.VisitPopular(r) }
func (r *PopularRecommendation) sealed()                        {}

func (r *FavoriteRecommendation) ActionID() int     { return r.ID }
func (r *FavoriteRecommendation) Kind() RequestKind { return RequestRecommendation }
func (r *FavoriteRecommendation) SubKind() string   { return "favorite" }
func (r *FavoriteRecommendation) Accept(v RequestVisitor) Result {
	return v.VisitFavoriteRecommendation(r)
}
func (r *FavoriteRecommendation) sealed() {}

func (r *SearchRecommendation) ActionID() int                  { return r.ID }
func (r *SearchRecommendation) Kind() RequestKind              { return RequestRecommendation }
func (r *SearchRecommendation) SubKind() string                { return "search" }
func (r *SearchRecommendation) Accept(v RequestVisitor) Result { return v.VisitSearch(r) }
func (r *SearchRecommendation) sealed()                        {}

func (r *MalformedRequest) ActionID() int                  { return r.ID }
func (r *MalformedRequest) Kind() RequestKind              { return r.Family }
func (r *MalformedRequest) SubKind() string                { return r.Type }
func (r *MalformedRequest) Accept(v RequestVisitor) Result { return v.VisitMalformed(r) }
func (r *MalformedRequest) sealed()                        {}
