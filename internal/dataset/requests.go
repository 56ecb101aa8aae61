// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/videodb/internal/models"
)

// Positions of the filter groups inside commandRecord.Filters.
const (
	filterYears = iota
	filterGenres
	filterWords
	filterAwards
)

// decodeRequest turns one flat record into its typed request. Records that
// name an unknown family or action, or carry unparseable filters, become a
// MalformedRequest so they still produce a result in order.
func decodeRequest(rec commandRecord) models.Request {
	switch strings.ToLower(rec.ActionType) {
	case "command":
		return decodeCommand(rec)
	case "query":
		return decodeQuery(rec)
	case "recommendation":
		return decodeRecommendation(rec)
	default:
		return &models.MalformedRequest{
			ID:     rec.ActionID,
			Family: models.RequestUnknown,
			Type:   rec.Type,
			Reason: fmt.Sprintf("unknown action type %q", rec.ActionType),
		}
	}
}

func decodeCommand(rec commandRecord) models.Request {
	switch rec.Type {
	case "favorite":
		return &models.FavoriteCommand{ID: rec.ActionID, Username: rec.Username, Title: rec.Title}
	case "view":
		return &models.ViewCommand{ID: rec.ActionID, Username: rec.Username, Title: rec.Title}
	case "rating":
		return &models.RateCommand{
			ID:       rec.ActionID,
			Username: rec.Username,
			Title:    rec.Title,
			Grade:    rec.Grade,
			Season:   rec.SeasonNumber,
		}
	default:
		return malformed(rec, models.RequestCommand, "unknown command %q", rec.Type)
	}
}

func decodeRecommendation(rec commandRecord) models.Request {
	switch rec.Type {
	case "standard":
		return &models.StandardRecommendation{ID: rec.ActionID, Username: rec.Username}
	case "best_unseen":
		return &models.BestUnseenRecommendation{ID: rec.ActionID, Username: rec.Username}
	case "popular":
		return &models.PopularRecommendation{ID: rec.ActionID, Username: rec.Username}
	case "favorite":
		return &models.FavoriteRecommendation{ID: rec.ActionID, Username: rec.Username}
	case "search":
		return &models.SearchRecommendation{ID: rec.ActionID, Username: rec.Username, Genre: rec.Genre}
	default:
		return malformed(rec, models.RequestRecommendation, "unknown recommendation %q", rec.Type)
	}
}

func decodeQuery(rec commandRecord) models.Request {
	filters, err := decodeFilters(rec.Filters)
	if err != nil {
		return malformed(rec, models.RequestQuery, "%v", err)
	}
	return &models.QueryRequest{
		ID:         rec.ActionID,
		ObjectType: rec.ObjectType,
		Criteria:   rec.Criteria,
		Sort:       rec.SortType,
		Filters:    filters,
		Limit:      rec.Number,
	}
}

// decodeFilters maps the positional filter groups onto QueryFilters,
// dropping null groups and null elements.
func decodeFilters(groups [][]*string) (models.QueryFilters, error) {
	var f models.QueryFilters
	for i, group := range groups {
		values := compact(group)
		switch i {
		case filterYears:
			for _, v := range values {
				year, err := strconv.Atoi(strings.TrimSpace(v))
				if err != nil {
					return f, fmt.Errorf("invalid year filter %q", v)
				}
				f.Years = append(f.Years, year)
			}
		case filterGenres:
			f.Genres = values
		case filterWords:
			f.Words = values
		case filterAwards:
			f.Awards = values
		}
	}
	return f, nil
}

func compact(group []*string) []string {
	var out []string
	for _, v := range group {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func malformed(rec commandRecord, family models.RequestKind, format string, args ...any) *models.MalformedRequest {
	return &models.MalformedRequest{
		ID:     rec.ActionID,
		Family: family,
		Type:   rec.Type,
		Reason: fmt.Sprintf(format, args...),
	}
}
