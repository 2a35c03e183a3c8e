package errors

import "errors"

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrUnauthorized      = errors.New("source rejected credentials")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMalformedRecord   = errors.New("malformed match record")
	ErrTeamNotInMatch    = errors.New("tracked team is neither home nor away")
	ErrInputClosed       = errors.New("input closed")
	ErrTooManyAttempts   = errors.New("too many invalid selections")
	ErrNoOptions         = errors.New("no options to select from")
)
