package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	derr "github.com/ozzus/team-fixtures/internal/domain/errors"
	"github.com/ozzus/team-fixtures/internal/infrastructures/footballdata/dto"
	"go.uber.org/zap"
)

const authHeader = "X-Auth-Token"

// StatusError reports a non-200 answer from the API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

func (e *StatusError) StatusCode() int {
	return e.Code
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusBadRequest, e.Code == http.StatusUnauthorized, e.Code == http.StatusForbidden:
		return derr.ErrUnauthorized
	case e.Code == http.StatusTooManyRequests, e.Code >= http.StatusInternalServerError:
		return derr.ErrSourceUnavailable
	default:
		return nil
	}
}

type Client struct {
	log        *zap.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *zap.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetTeamMatches issues a single request; there is no retry.
func (c *Client) GetTeamMatches(ctx context.Context, teamID int64, apiKey string) ([]dto.Match, error) {
	url := fmt.Sprintf("%s/v4/teams/%d/matches", c.baseURL, teamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(authHeader, apiKey)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("requesting team matches", zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("team matches request rejected", zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var body dto.TeamMatchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", derr.ErrMalformedResponse, err)
	}
	if len(body.Matches) == 0 || string(body.Matches) == "null" {
		return nil, fmt.Errorf("%w: missing matches array", derr.ErrMalformedResponse)
	}

	var matches []dto.Match
	if err := json.Unmarshal(body.Matches, &matches); err != nil {
		return nil, fmt.Errorf("%w: decode matches: %v", derr.ErrMalformedResponse, err)
	}

	c.log.Debug("team matches received", zap.Int("count", len(matches)))
	return matches, nil
}
