package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v62/github"

	"github.com/osse101/gitfolio/internal/domain"
)

// mapError translates go-github errors into domain errors.
func mapError(err error, login string) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch code := respErr.Response.StatusCode; {
		case code == http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, login)
		case code == http.StatusForbidden, code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		case code == http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", domain.ErrTokenRequired, err)
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
}

// graphQLError is one entry of a GraphQL "errors" array.
type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	graphQLTypeNotFound    = "NOT_FOUND"
	graphQLTypeRateLimited = "RATE_LIMITED"
)

// mapGraphQLErrors converts a non-empty GraphQL errors array into a domain error.
func mapGraphQLErrors(errs []graphQLError, login string) error {
	for _, e := range errs {
		switch e.Type {
		case graphQLTypeNotFound:
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, login)
		case graphQLTypeRateLimited:
			return fmt.Errorf("%w: %s", domain.ErrRateLimited, e.Message)
		}
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrUpstreamUnavailable, ErrMsgGraphQL, errs[0].Message)
}
