package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	derr "github.com/ozzus/team-fixtures/internal/domain/errors"
	"github.com/ozzus/team-fixtures/internal/domain/models"
	"github.com/ozzus/team-fixtures/internal/domain/ports"
	"go.uber.org/zap"
)

const (
	continentPrompt = "Enter your choice (number): "
	timezonePrompt  = "Select your preferred time zone (number): "
	apiKeyPrompt    = "Please enter your API key: "
	noData          = "No data available to display."
)

type Options struct {
	TeamName string
	// Timezone and APIKey skip their prompts when set.
	Timezone string
	APIKey   string
	Sort     models.SortOrder
}

type FixturesService struct {
	log       *zap.Logger
	catalog   ports.TimezoneCatalog
	selector  ports.Selector
	source    ports.MatchSource
	presenter ports.Presenter
	opts      Options
}

func NewFixturesService(log *zap.Logger, catalog ports.TimezoneCatalog, selector ports.Selector, source ports.MatchSource, presenter ports.Presenter, opts Options) *FixturesService {
	if opts.Sort == "" {
		opts.Sort = models.SortLexical
	}
	return &FixturesService{
		log:       log,
		catalog:   catalog,
		selector:  selector,
		source:    source,
		presenter: presenter,
		opts:      opts,
	}
}

// Run performs one invocation: pick a timezone, fetch, print. Fetch and data
// problems are reported to the user and do not fail the run; only input and
// cancellation errors are returned.
func (s *FixturesService) Run(ctx context.Context) error {
	const op = "service.Run"

	tz, loc, err := s.resolveTimezone(ctx)
	if err != nil {
		return fmt.Errorf("%s: select timezone: %w", op, err)
	}

	apiKey := s.opts.APIKey
	if apiKey == "" {
		apiKey, err = s.selector.ReadLine(ctx, apiKeyPrompt)
		if err != nil {
			return fmt.Errorf("%s: read api key: %w", op, err)
		}
	}

	logger := s.log.With(
		zap.String("op", op),
		zap.String("team", s.opts.TeamName),
		zap.String("timezone", tz),
	)

	s.presenter.Noticef("Fetching %s fixtures for timezone: %s...", s.opts.TeamName, tz)

	raws, skipped, err := s.source.FetchMatches(ctx, apiKey)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: fetch matches: %w", op, err)
		}
		logger.Info("fetch matches failed", zap.Error(err))
		s.reportFetchError(err)
		s.presenter.Notice(noData)
		return nil
	}

	for _, e := range skipped {
		logger.Info("malformed match skipped", zap.Error(e))
		s.presenter.Warnf("Skipping match: %v", e)
	}

	display := make([]models.DisplayMatch, 0, len(raws))
	for _, raw := range raws {
		m, err := Transform(raw, loc, s.opts.TeamName)
		if err != nil {
			logger.Info("match skipped", zap.Error(err))
			s.presenter.Warnf("Skipping match: %v", err)
			continue
		}
		display = append(display, m)
	}

	if len(display) == 0 {
		s.presenter.Notice(noData)
		return nil
	}

	logger.Debug("presenting matches", zap.Int("count", len(display)), zap.Int("skipped", len(raws)-len(display)+len(skipped)))
	return s.presenter.Present(Aggregate(display, s.opts.Sort))
}

func (s *FixturesService) resolveTimezone(ctx context.Context) (string, *time.Location, error) {
	if tz := s.opts.Timezone; tz != "" {
		loc, err := s.catalog.Location(tz)
		if err == nil {
			return tz, loc, nil
		}
		s.log.Info("configured timezone rejected", zap.String("timezone", tz), zap.Error(err))
		s.presenter.Warnf("Configured timezone %q is not valid, please choose one.", tz)
	}

	s.presenter.Notice("Select a continent to view its time zones:")
	continent, err := s.selector.Select(ctx, s.catalog.ListContinents(), continentPrompt)
	if err != nil {
		return "", nil, err
	}

	tz := continent
	// Top-level identifiers such as UTC have no zones beneath them.
	if zones := s.catalog.ListZones(continent); len(zones) > 0 {
		s.presenter.Noticef("\nTime zones in %s:", continent)
		tz, err = s.selector.Select(ctx, zones, timezonePrompt)
		if err != nil {
			return "", nil, err
		}
	}

	loc, err := s.catalog.Location(tz)
	if err != nil {
		return "", nil, err
	}
	return tz, loc, nil
}

func (s *FixturesService) reportFetchError(err error) {
	var status interface{ StatusCode() int }
	switch {
	case errors.As(err, &status):
		s.presenter.Noticef("Failed to fetch data: %d", status.StatusCode())
	case errors.Is(err, derr.ErrMalformedResponse):
		s.presenter.Notice("Failed to fetch data: malformed response")
	case errors.Is(err, derr.ErrSourceUnavailable):
		s.presenter.Notice("Failed to fetch data: source unavailable")
	default:
		s.presenter.Noticef("Failed to fetch data: %v", err)
	}
}
