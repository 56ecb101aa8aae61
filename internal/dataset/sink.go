// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/videodb/internal/models"
)

// OutputEntry is one line of the result document.
type OutputEntry struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// recommendationNames maps recommendation sub-kinds to their display prefix.
var recommendationNames = map[string]string{
	"standard":    "Standard",
	"best_unseen": "BestRatedUnseen",
	"popular":     "Popular",
	"favorite":    "Favorite",
	"search":      "Search",
}

// Message renders the text reported for one result.
func Message(r models.Result) string {
	if r.Err != nil && !errors.Is(r.Err, models.ErrPrecondition) {
		return "error -> " + r.Err.Error()
	}

	switch r.Kind {
	case models.RequestCommand:
		if r.Status == "" && r.Err != nil {
			if text, ok := models.StatusFor(r.Err); ok {
				return text
			}
			return "error -> " + r.Err.Error()
		}
		return r.Status

	case models.RequestQuery:
		return "Query result: " + formatList(r.Titles)

	case models.RequestRecommendation:
		name := recommendationNames[r.SubKind] + "Recommendation"
		if r.SubKind == "search" {
			if len(r.Titles) == 0 {
				return name + " cannot be applied!"
			}
			return name + " result: " + formatList(r.Titles)
		}
		if r.Title == "" {
			return name + " cannot be applied!"
		}
		return name + " result: " + r.Title

	default:
		if r.Err != nil {
			return "error -> " + r.Err.Error()
		}
		return r.Status
	}
}

func formatList(titles []string) string {
	return "[" + strings.Join(titles, ", ") + "]"
}

// Entries renders results in order.
func Entries(results []models.Result) []OutputEntry {
	out := make([]OutputEntry, len(results))
	for i, r := range results {
		out[i] = OutputEntry{ID: r.ActionID, Message: Message(r)}
	}
	return out
}

// WriteResults writes the rendered results to w as an indented JSON array.
func WriteResults(w io.Writer, results []models.Result) error {
	data, err := json.MarshalIndent(Entries(results), "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// WriteResultsFile writes the rendered results to path, or to stdout when
// path is empty or "-".
func WriteResultsFile(path string, results []models.Result) error {
	if path == "" || path == "-" {
		return WriteResults(os.Stdout, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteResults(f, results); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
