// Package gateway provides access to the GitHub API: a raw GraphQL
// client with cursor pagination, and a REST client used to resolve
// repository metadata.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const (
	// defaultRateLimitWait is used when a rate-limited response carries
	// no Retry-After hint.
	defaultRateLimitWait = 60 * time.Second

	// maxRateLimitRetries bounds the backoff-and-retry loop for a single
	// request. Large enough that a normal run never hits it, but finite,
	// so a persistently rate-limited run fails instead of stalling forever.
	maxRateLimitRetries = 1000
)

// TransportError reports a non-2xx HTTP response other than a rate limit.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("github api returned status %d: %s", e.StatusCode, e.Body)
}

// GraphQLError is one entry of a GraphQL response error list.
type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ProtocolError reports a 2xx response whose body carries an error list
// instead of a data payload.
type ProtocolError struct {
	Errors []GraphQLError
}

func (e *ProtocolError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql error"
	}
	return fmt.Sprintf("graphql error: %s", e.Errors[0].Message)
}

// Client executes GraphQL queries against a single endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *log.Logger
}

// NewClient creates a Client authenticating with the given token.
func NewClient(endpoint, token string, logger *log.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		httpClient: oauth2.NewClient(context.Background(), ts),
		endpoint:   endpoint,
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// Execute posts one query with its variables and returns the data
// payload. Rate-limited responses are retried after the server-hinted
// wait; other transport failures and GraphQL error lists are fatal.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql request: %w", err)
	}

	for attempt := 0; attempt <= maxRateLimitRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build graphql request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("graphql request failed: %w", err)
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read graphql response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp.Header)
			c.logger.Printf("Rate limit hit, waiting %v before retrying...", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}

		var parsed graphQLResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode graphql response: %w", err)
		}
		if len(parsed.Errors) > 0 {
			return nil, &ProtocolError{Errors: parsed.Errors}
		}
		return parsed.Data, nil
	}

	return nil, fmt.Errorf("giving up after %d rate-limit retries", maxRateLimitRetries)
}

// retryAfter reads the Retry-After hint in seconds, defaulting when the
// header is absent or malformed.
func retryAfter(h http.Header) time.Duration {
	if v := h.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultRateLimitWait
}
