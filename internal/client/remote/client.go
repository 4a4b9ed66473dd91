// Package remote is the HTTP client for the profile-sync server. The server
// mirrors a single profile and onboarding flag; the client pushes the active
// user's state to it and reads it back. Transient failures (network errors
// and 5xx responses) are retried with fibonacci backoff before the call is
// reported unavailable.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
	"github.com/dmitrijs2005/trattoria/internal/common"
)

const (
	maxRetries  = 3
	retryBase   = 200 * time.Millisecond
	profilePath = "/api/profile"
	onboardPath = "/api/onboarding"
	userPath    = "/api/user"
	healthPath  = "/api/health"
	contentType = "application/json"
)

type Client struct {
	endpointURL string
	httpClient  *http.Client
}

func NewClient(endpointURL string, timeout time.Duration) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// doRetry runs fn with bounded fibonacci backoff. fn decides what is
// retryable by wrapping errors with retry.RetryableError.
func (c *Client) doRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(retryBase))
	return retry.Do(ctx, b, fn)
}

// do performs one request and hands the response body to parse (when the
// status is 2xx). Network errors and 5xx responses come back wrapped as
// retryable.
func (c *Client) do(ctx context.Context, method, path string, payload any, parse func(body []byte) error) error {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(common.ErrorServerUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.RetryableError(common.ErrorServerUnavailable)
	}

	switch {
	case resp.StatusCode >= 500:
		return retry.RetryableError(common.ErrorServerUnavailable)
	case resp.StatusCode >= 400:
		return fmt.Errorf("server rejected %s %s: %s", method, path, resp.Status)
	}

	if parse == nil {
		return nil
	}
	return parse(body)
}

// FetchProfile returns the mirrored profile, or nil when the server holds
// none (the API answers `null`).
func (c *Client) FetchProfile(ctx context.Context) (*models.Profile, error) {
	var result *models.Profile
	err := c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, profilePath, nil, func(body []byte) error {
			var p *models.Profile
			if err := json.Unmarshal(body, &p); err != nil {
				return fmt.Errorf("failed to decode profile: %w", err)
			}
			result = p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PushProfile replaces the mirrored profile with p.
func (c *Client) PushProfile(ctx context.Context, p *models.Profile) error {
	if p == nil || p.Email == "" {
		return common.ErrorEmailRequired
	}
	return c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, profilePath, p, nil)
	})
}

// FetchOnboarding reports the mirrored onboarding flag.
func (c *Client) FetchOnboarding(ctx context.Context) (bool, error) {
	var completed bool
	err := c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, onboardPath, nil, func(body []byte) error {
			var resp struct {
				Completed bool `json:"completed"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to decode onboarding status: %w", err)
			}
			completed = resp.Completed
			return nil
		})
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// PushOnboarding sets the mirrored onboarding flag.
func (c *Client) PushOnboarding(ctx context.Context, completed bool) error {
	payload := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}
	return c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, onboardPath, payload, nil)
	})
}

// DeleteUser clears the mirrored profile and onboarding flag.
func (c *Client) DeleteUser(ctx context.Context) error {
	return c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, userPath, nil, nil)
	})
}

// Ping reports whether the server answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, healthPath, nil, nil)
	})
}
