package mappers

import (
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/team-fixtures/internal/domain/errors"
	"github.com/ozzus/team-fixtures/internal/domain/models"
	"github.com/ozzus/team-fixtures/internal/infrastructures/footballdata/dto"
)

const utcDateLayout = "2006-01-02T15:04:05Z"

func ToRawMatch(m dto.Match) (models.RawMatch, error) {
	kickoff, err := parseKickoff(m.UTCDate)
	if err != nil {
		return models.RawMatch{}, fmt.Errorf("%w: match %d: %v", derr.ErrMalformedRecord, m.ID, err)
	}

	// Names are kept verbatim; tracked-team matching is exact.
	if isBlank(m.HomeTeam.Name) || isBlank(m.AwayTeam.Name) {
		return models.RawMatch{}, fmt.Errorf("%w: match %d: missing team name", derr.ErrMalformedRecord, m.ID)
	}

	if isBlank(m.Competition.Name) {
		return models.RawMatch{}, fmt.Errorf("%w: match %d: missing competition", derr.ErrMalformedRecord, m.ID)
	}

	return models.RawMatch{
		KickoffUTC:  kickoff.UTC(),
		HomeTeam:    m.HomeTeam.Name,
		AwayTeam:    m.AwayTeam.Name,
		Matchday:    matchday(m.Matchday),
		Status:      m.Status,
		Competition: m.Competition.Name,
		FullTime: models.Score{
			Home: m.Score.FullTime.Home,
			Away: m.Score.FullTime.Away,
		},
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Cup rounds come back without a matchday.
func matchday(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func parseKickoff(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty utcDate")
	}

	layouts := []string{
		utcDateLayout,
		time.RFC3339,
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}
