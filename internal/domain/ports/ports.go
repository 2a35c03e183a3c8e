package ports

import (
	"context"
	"time"

	"github.com/ozzus/team-fixtures/internal/domain/models"
)

// MatchSource returns the tracked team's matches. Records that could not be
// mapped are reported in skipped instead of failing the whole fetch.
type MatchSource interface {
	FetchMatches(ctx context.Context, apiKey string) (matches []models.RawMatch, skipped []error, err error)
}

type TimezoneCatalog interface {
	ListContinents() []string
	ListZones(continent string) []string
	Location(name string) (*time.Location, error)
}

type Selector interface {
	Select(ctx context.Context, options []string, promptText string) (string, error)
	ReadLine(ctx context.Context, promptText string) (string, error)
}

type Presenter interface {
	Present(groups []models.CompetitionGroup) error
	Notice(msg string)
	Noticef(format string, args ...any)
	Warnf(format string, args ...any)
}
