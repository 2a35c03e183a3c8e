package dto

import "encoding/json"

// TeamMatchesResponse is the body of GET /v4/teams/{id}/matches. Matches stays
// raw so a missing key can be told apart from an empty list.
type TeamMatchesResponse struct {
	Matches json.RawMessage `json:"matches"`
}

type Match struct {
	ID          int64       `json:"id"`
	UTCDate     string      `json:"utcDate"`
	Status      string      `json:"status"`
	Matchday    *int        `json:"matchday"`
	HomeTeam    Team        `json:"homeTeam"`
	AwayTeam    Team        `json:"awayTeam"`
	Competition Competition `json:"competition"`
	Score       Score       `json:"score"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Competition struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Score struct {
	Winner   *string  `json:"winner"`
	FullTime ScoreSet `json:"fullTime"`
}

type ScoreSet struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
