package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// apiClient is the HTTP plumbing shared by geocoding providers.
type apiClient struct {
	session    *http.Client
	authHeader string
	authValue  string
	// Number of attempts per request including the first.
	maxAttempts int
	backoff     time.Duration
	// Shared across goroutines; providers enforce per-key quotas.
	limiter *rate.Limiter
}

// newAPIClient builds a client allowing perSecond requests per second.
// A non-positive perSecond disables rate limiting.
func newAPIClient(authHeader, authValue string, perSecond float64) apiClient {
	limit := rate.Inf
	burst := 1
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
		burst = max(1, int(perSecond))
	}

	return apiClient{
		session:     &http.Client{Timeout: 10 * time.Second},
		authHeader:  authHeader,
		authValue:   authValue,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
		limiter:     rate.NewLimiter(limit, burst),
	}
}

func (c apiClient) newGet(ctx context.Context, endpoint string, query map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.authHeader != "" {
		req.Header.Set(c.authHeader, c.authValue)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c apiClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// getWithRetry retries transient failures (network errors, 429 and 5xx)
// with exponential backoff while respecting context cancellation.
func (c apiClient) getWithRetry(
	ctx context.Context,
	endpoint string,
	query map[string]string,
) (*http.Response, error) {
	backoff := c.backoff
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := c.newGet(ctx, endpoint, query)
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == c.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func retryable(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// normalize collapses whitespace so equivalent queries share cache keys.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
