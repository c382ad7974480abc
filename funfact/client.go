// Package funfact resolves a short trivia sentence for a number. It asks the
// numbers API first and falls back to a locally generated sentence whenever
// the remote call fails.
package funfact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public numbers API.
const DefaultBaseURL = "http://numbersapi.com"

// maxFactBytes caps how much of a response body is read.
const maxFactBytes = 64 << 10

// ErrUnexpectedStatus is returned when the numbers API answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("funfact: unexpected status")

// Source returns a trivia sentence for n.
type Source interface {
	Fact(ctx context.Context, n int64) (string, error)
}

// Client fetches math facts from the numbers API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the API at baseURL (e.g. "http://numbersapi.com").
// Every request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fact requests GET <baseURL>/<n>/math and returns the body verbatim.
// It is safe for concurrent use.
func (c *Client) Fact(ctx context.Context, n int64) (string, error) {
	url := c.baseURL + "/" + strconv.FormatInt(n, 10) + "/math"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("funfact: new request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("funfact: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactBytes))
	if err != nil {
		return "", fmt.Errorf("funfact: read body: %w", err)
	}
	return string(body), nil
}
