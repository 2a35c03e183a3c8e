package footballdata

import (
	"context"
	"fmt"

	"github.com/ozzus/team-fixtures/internal/domain/models"
	"github.com/ozzus/team-fixtures/internal/infrastructures/footballdata/dto"
	"github.com/ozzus/team-fixtures/internal/infrastructures/footballdata/mappers"
)

type matchesGetter interface {
	GetTeamMatches(ctx context.Context, teamID int64, apiKey string) ([]dto.Match, error)
}

type Source struct {
	client matchesGetter
	teamID int64
}

func NewSource(client matchesGetter, teamID int64) *Source {
	return &Source{
		client: client,
		teamID: teamID,
	}
}

func (s *Source) FetchMatches(ctx context.Context, apiKey string) ([]models.RawMatch, []error, error) {
	items, err := s.client.GetTeamMatches(ctx, s.teamID, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("get team %d matches: %w", s.teamID, err)
	}

	matches := make([]models.RawMatch, 0, len(items))
	var skipped []error
	for _, item := range items {
		m, err := mappers.ToRawMatch(item)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		matches = append(matches, m)
	}

	return matches, skipped, nil
}
