// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// Result is the immutable outcome of one request.
//
// Exactly one of Status, Title or Titles is meaningful, depending on the
// request: commands report a Status, single-title recommendations a Title
// (empty when nothing applies), search and queries an ordered Titles list.
// Err is set when the request failed; Status then carries the text reported
// to the caller.
type Result struct {
	// ActionID is the id of the originating request.
	ActionID int `json:"id"`

	// Kind is the action family of the originating request.
	Kind RequestKind `json:"kind"`

	// SubKind names the concrete action.
	SubKind string `json:"sub_kind"`

	// Status is the command status or failure text.
	Status string `json:"status,omitempty"`

	// Title is a single recommended title.
	Title string `json:"title,omitempty"`

	// Titles is an ordered result list.
	Titles []string `json:"titles,omitempty"`

	// Err is the failure, if any.
	Err error `json:"-"`
}

// Failed reports whether the request produced an error.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Outcome classifies the result for logs and metrics labels.
func (r *Result) Outcome() string {
	switch {
	case r.Err == nil:
		return "ok"
	case isPrecondition(r.Err):
		return "rejected"
	default:
		return "error"
	}
}
