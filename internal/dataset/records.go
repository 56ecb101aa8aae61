// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dataset

// document is the on-disk layout of one input file.
type document struct {
	Actors   []actorRecord   `json:"actors"`
	Users    []userRecord    `json:"users"`
	Movies   []movieRecord   `json:"movies"`
	Serials  []serialRecord  `json:"serials"`
	Commands []commandRecord `json:"commands"`
}

type actorRecord struct {
	Name              string         `json:"name"`
	CareerDescription string         `json:"career_description"`
	Filmography       []string       `json:"filmography"`
	Awards            map[string]int `json:"awards"`
}

type userRecord struct {
	Username       string         `json:"username"`
	Subscription   string         `json:"subscription_type"`
	History        map[string]int `json:"history"`
	FavoriteMovies []string       `json:"favorite_movies"`
}

type movieRecord struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Genres   []string `json:"genres"`
	Cast     []string `json:"cast"`
	Duration int      `json:"duration"`
}

type seasonRecord struct {
	Duration int `json:"duration"`
}

type serialRecord struct {
	Title   string         `json:"title"`
	Year    int            `json:"year"`
	Genres  []string       `json:"genres"`
	Cast    []string       `json:"cast"`
	Seasons []seasonRecord `json:"seasons"`
}

// commandRecord is the flat action layout shared by every request family.
// Fields irrelevant to a given action are left zero.
//
// Filters is positional: index 0 holds years, 1 genres, 2 description
// words and 3 awards. Any group, and any element inside a group, may be
// null.
type commandRecord struct {
	ActionID     int         `json:"action_id"`
	ActionType   string      `json:"action_type"`
	Type         string      `json:"type"`
	Username     string      `json:"username"`
	Title        string      `json:"title"`
	Grade        float64     `json:"grade"`
	SeasonNumber int         `json:"season_number"`
	ObjectType   string      `json:"object_type"`
	Criteria     string      `json:"criteria"`
	SortType     string      `json:"sort_type"`
	Number       int         `json:"number"`
	Genre        string      `json:"genre"`
	Filters      [][]*string `json:"filters"`
}
