package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// UpstreamError is returned when a call to the GitHub API fails. Op names
// the call that failed so a fan-out failure can be attributed.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("github %s failed with status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("github %s failed: %s", e.Op, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether the upstream rejected the call for rate limiting
func (e *UpstreamError) IsRateLimited() bool {
	return e.Status == http.StatusForbidden || e.Status == http.StatusTooManyRequests
}

// ValidationError is returned for bad caller input before any upstream access
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsRateLimited reports whether err carries an upstream rate-limit failure
func IsRateLimited(err error) bool {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.IsRateLimited()
	}
	return false
}

// newUpstreamError converts a go-github or context error into an UpstreamError
func newUpstreamError(op string, err error, resp *github.Response) error {
	if err == nil {
		return nil
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr
	}

	result := &UpstreamError{Op: op, Message: err.Error(), Err: err}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		result.Status = http.StatusGatewayTimeout
		result.Message = "request timed out"
	case errors.As(err, &rateErr):
		result.Status = http.StatusForbidden
		result.Message = rateErr.Message
	case errors.As(err, &abuseErr):
		result.Status = http.StatusForbidden
		result.Message = abuseErr.Message
	case errors.As(err, &respErr) && respErr.Response != nil:
		result.Status = respErr.Response.StatusCode
		result.Message = respErr.Message
	case resp != nil && resp.Response != nil:
		result.Status = resp.StatusCode
	}

	return result
}
