package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpstreamError(t *testing.T) {
	forbidden := &http.Response{StatusCode: http.StatusForbidden, Request: &http.Request{Method: http.MethodGet}}
	notFound := &http.Response{StatusCode: http.StatusNotFound, Request: &http.Request{Method: http.MethodGet}}

	testCases := []struct {
		name        string
		err         error
		resp        *github.Response
		status      int
		rateLimited bool
	}{
		{
			name:        "Rate limit error",
			err:         &github.RateLimitError{Response: forbidden, Message: "API rate limit exceeded"},
			status:      http.StatusForbidden,
			rateLimited: true,
		},
		{
			name:        "Secondary rate limit",
			err:         &github.AbuseRateLimitError{Response: forbidden, Message: "secondary rate limit"},
			status:      http.StatusForbidden,
			rateLimited: true,
		},
		{
			name:   "Error response",
			err:    &github.ErrorResponse{Response: notFound, Message: "Not Found"},
			status: http.StatusNotFound,
		},
		{
			name:   "Deadline",
			err:    fmt.Errorf("get: %w", context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
		},
		{
			name:   "Status from response",
			err:    errors.New("unexpected EOF"),
			resp:   &github.Response{Response: &http.Response{StatusCode: http.StatusBadGateway}},
			status: http.StatusBadGateway,
		},
		{
			name:   "Transport failure",
			err:    errors.New("connection refused"),
			status: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newUpstreamError("get user", tc.err, tc.resp)

			var upstreamErr *UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
			assert.Equal(t, "get user", upstreamErr.Op)
			assert.Equal(t, tc.status, upstreamErr.Status)
			assert.Equal(t, tc.rateLimited, upstreamErr.IsRateLimited())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewUpstreamErrorKeepsExisting(t *testing.T) {
	original := &UpstreamError{Op: "search issues", Status: http.StatusForbidden}
	err := newUpstreamError("fetch stats", fmt.Errorf("wrapped: %w", original), nil)

	assert.Same(t, original, err)
	assert.NoError(t, newUpstreamError("noop", nil, nil))
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Op: "list repositories", Status: 403, Message: "API rate limit exceeded"}
	assert.Equal(t, "github list repositories failed with status 403: API rate limit exceeded", err.Error())

	err = &UpstreamError{Op: "get user", Message: "connection refused"}
	assert.Equal(t, "github get user failed: connection refused", err.Error())
}

func TestValidateIdentity(t *testing.T) {
	identity, err := ValidateIdentity("  octocat\n")
	require.NoError(t, err)
	assert.Equal(t, "octocat", identity)

	_, err = ValidateIdentity("")
	assert.EqualError(t, err, "invalid username: Username is required")
}
