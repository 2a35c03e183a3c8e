package service

import (
	"fmt"
	"sort"
	"time"

	derr "github.com/ozzus/team-fixtures/internal/domain/errors"
	"github.com/ozzus/team-fixtures/internal/domain/models"
)

// Transform converts raw into the tracked team's view of the match.
func Transform(raw models.RawMatch, loc *time.Location, trackedTeam string) (models.DisplayMatch, error) {
	isHome := raw.HomeTeam == trackedTeam
	isAway := raw.AwayTeam == trackedTeam
	if isHome == isAway {
		return models.DisplayMatch{}, fmt.Errorf("%w: %q vs %q (tracked %q)", derr.ErrTeamNotInMatch, raw.HomeTeam, raw.AwayTeam, trackedTeam)
	}

	venue := models.VenueAway
	opponent := raw.HomeTeam
	if isHome {
		venue = models.VenueHome
		opponent = raw.AwayTeam
	}

	local := raw.KickoffUTC.In(loc)

	return models.DisplayMatch{
		Competition:  raw.Competition,
		Matchday:     raw.Matchday,
		KickoffLocal: local,
		LocalTime:    local.Format(models.LocalTimeLayout),
		Venue:        venue,
		Opponent:     opponent,
		Status:       raw.Status,
		Result:       fmt.Sprintf("%s %d - %d %s", raw.HomeTeam, goals(raw.FullTime.Home), goals(raw.FullTime.Away), raw.AwayTeam),
	}, nil
}

// A missing side renders as 0, same as a scored 0.
func goals(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Aggregate stable-sorts by competition then kickoff and groups consecutive
// matches of the same competition.
func Aggregate(matches []models.DisplayMatch, order models.SortOrder) []models.CompetitionGroup {
	sorted := make([]models.DisplayMatch, len(matches))
	copy(sorted, matches)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Competition != b.Competition {
			return a.Competition < b.Competition
		}
		if order == models.SortChronological {
			return a.KickoffLocal.Before(b.KickoffLocal)
		}
		return a.LocalTime < b.LocalTime
	})

	var groups []models.CompetitionGroup
	for _, m := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Competition == m.Competition {
			groups[n-1].Matches = append(groups[n-1].Matches, m)
			continue
		}
		groups = append(groups, models.CompetitionGroup{
			Competition: m.Competition,
			Matches:     []models.DisplayMatch{m},
		})
	}

	return groups
}

func ParseSortOrder(s string) (models.SortOrder, error) {
	switch models.SortOrder(s) {
	case "", models.SortLexical:
		return models.SortLexical, nil
	case models.SortChronological:
		return models.SortChronological, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}
