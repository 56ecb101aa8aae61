// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every engine. Callers match with errors.Is.
var (
	// ErrNotFound reports a referenced user, video, actor or genre that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition reports a business rule that rejected the request.
	ErrPrecondition = errors.New("precondition violation")

	// ErrInvalidInput reports a malformed request (out-of-range grade, bad criteria).
	ErrInvalidInput = errors.New("invalid input")

	// ErrIntegrity reports a corrupt dataset detected at load time. It is fatal.
	ErrIntegrity = errors.New("dataset integrity violation")
)

// Precondition failures. Each wraps ErrPrecondition and carries the status text
// reported back to the caller.
var (
	ErrNotInHistory    = fmt.Errorf("%w: Haven't been seen yet!", ErrPrecondition)
	ErrAlreadyFavorite = fmt.Errorf("%w: Already in Favorites!", ErrPrecondition)
	ErrNotSeen         = fmt.Errorf("%w: Not seen!", ErrPrecondition)
	ErrAlreadyRated    = fmt.Errorf("%w: Already rated!", ErrPrecondition)
	ErrPremiumOnly     = fmt.Errorf("%w: premium subscription required", ErrPrecondition)
)

// statusText maps precondition sentinels to the status a command reports.
var statusText = map[error]string{
	ErrNotInHistory:    "Haven't been seen yet!",
	ErrAlreadyFavorite: "Already in Favorites!",
	ErrNotSeen:         "Not seen!",
	ErrAlreadyRated:    "Already rated!",
}

// StatusFor returns the command status text for a precondition failure.
// The second return value is false when err is not a known precondition.
func StatusFor(err error) (string, bool) {
	for sentinel, text := range statusText {
		if errors.Is(err, sentinel) {
			return text, true
		}
	}
	return "", false
}

func isPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
