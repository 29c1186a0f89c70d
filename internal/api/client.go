// Package api is the REST client for the community-platform backend. Every
// list endpoint shares the same envelope; the client validates it against a
// JSON schema at the boundary and decodes items into typed entities.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/communityhub/mobilecore/internal/entity"
)

const defaultRequestTimeout = 15 * time.Second

// TokenSource yields the bearer token attached to outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the community-platform REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
	schema  *jsonschema.Schema
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileSchema(envelopeJSONSchema())
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
		schema:  schema,
	}, nil
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// envelope is the common response shape of every list endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Items      json.RawMessage   `json:"items"`
		Pagination entity.Pagination `json:"pagination"`
	} `json:"data"`
}

// getList issues a GET for rel, validates the envelope and decodes items into
// dest (a pointer to a slice). It makes exactly one attempt; retrying is the
// caller's decision.
func (c *Client) getList(ctx context.Context, rel *url.URL, dest any) (entity.Pagination, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	reqID := uuid.New().String()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return entity.Pagination{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.Warn("api.token_read_error", "req_id", reqID, "error", err)
		} else if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.logger.Info("api.request", "req_id", reqID, "path", rel.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return entity.Pagination{}, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("api.body_close_error", "req_id", reqID, "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("api.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return entity.Pagination{}, &ServerError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	if err := validateJSON(c.schema, raw); err != nil {
		return entity.Pagination{}, &ParseError{Cause: err}
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return entity.Pagination{}, &ParseError{Cause: err}
	}
	if !env.Success {
		return entity.Pagination{}, &ServerError{Status: resp.StatusCode, Message: env.Message}
	}
	if dest != nil && len(env.Data.Items) > 0 {
		if err := json.Unmarshal(env.Data.Items, dest); err != nil {
			return entity.Pagination{}, &ParseError{Cause: err}
		}
	}
	return env.Data.Pagination, nil
}

// serverMessage pulls a message out of an error body when the server sent
// one. Best effort only.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("base URL is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
