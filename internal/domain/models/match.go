package models

import "time"

// LocalTimeLayout renders kickoffs on a 12-hour clock, e.g. "2024-03-10 04:00 PM".
const LocalTimeLayout = "2006-01-02 03:04 PM"

type Score struct {
	Home *int
	Away *int
}

type RawMatch struct {
	KickoffUTC  time.Time
	HomeTeam    string
	AwayTeam    string
	Matchday    int
	Status      string
	Competition string
	FullTime    Score
}

type Venue int

const (
	VenueHome Venue = iota
	VenueAway
)

func (v Venue) String() string {
	if v == VenueHome {
		return "Home"
	}
	return "Away"
}

type DisplayMatch struct {
	Competition  string
	Matchday     int
	KickoffLocal time.Time
	LocalTime    string
	Venue        Venue
	Opponent     string
	Status       string
	Result       string
}

type CompetitionGroup struct {
	Competition string
	Matches     []DisplayMatch
}

type SortOrder string

const (
	// SortLexical orders by the formatted local time string. Within one day
	// "01:00 PM" sorts before "11:00 AM".
	SortLexical       SortOrder = "lexical"
	SortChronological SortOrder = "chronological"
)
