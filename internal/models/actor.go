// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"strings"
	"unicode"
)

// Actor is a performer credited on catalog videos.
type Actor struct {
	// Name uniquely identifies the actor.
	Name string `json:"name"`

	// CareerDescription is free text searched by description queries.
	CareerDescription string `json:"career_description"`

	// Filmography lists the titles the actor appeared in. Titles missing
	// from the catalog are kept but ignored by rating computations.
	Filmography []string `json:"filmography"`

	// Awards maps award name to the number of times it was won.
	Awards map[string]int `json:"awards"`

	// Index is the stable load-order index.
	Index int `json:"index"`
}

// TotalAwards returns the sum of all award counts.
func (a *Actor) TotalAwards() int {
	total := 0
	for _, n := range a.Awards {
		total += n
	}
	return total
}

// HasAwards reports whether the actor won every named award at least once.
func (a *Actor) HasAwards(awards []string) bool {
	for _, award := range awards {
		if a.Awards[award] == 0 {
			return false
		}
	}
	return true
}

// DescriptionHasWords reports whether every keyword appears as a whole word
// in the career description, ignoring case.
func (a *Actor) DescriptionHasWords(words []string) bool {
	if len(words) == 0 {
		return true
	}
	tokens := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(strings.ToLower(a.CareerDescription), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[tok] = struct{}{}
	}
	for _, w := range words {
		if _, ok := tokens[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}
