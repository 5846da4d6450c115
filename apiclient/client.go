package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single request/response exchange when the caller
// does not provide an *http.Client of their own.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for constructing a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://api.nordkost.no".
	BaseURL string

	// Tokens supplies the bearer token per request. Nil means requests are
	// sent unauthenticated.
	Tokens TokenSource

	// HTTPClient overrides the underlying transport. Nil uses a client with
	// DefaultTimeout.
	HTTPClient *http.Client

	// Logger receives per-request debug records. Nil discards them.
	Logger *slog.Logger

	// OnUnauthenticated runs after any 401 response, in addition to the
	// error being returned. The session layer hooks forced sign-out here.
	OnUnauthenticated func()
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
	)
}

// Client issues JSON requests against the ERP backend. It owns header
// injection (bearer token, request id) and error classification; it never
// retries and never interprets payloads.
type Client struct {
	baseURL           *url.URL
	http              *http.Client
	tokens            TokenSource
	log               *slog.Logger
	onUnauthenticated func()
}

// New constructs a Client from cfg.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:           base,
		http:              httpClient,
		tokens:            cfg.Tokens,
		log:               logger,
		onUnauthenticated: cfg.OnUnauthenticated,
	}, nil
}

// do executes one HTTP exchange and returns the raw response body. A nil
// body sends no payload. Failures of any kind return *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, malformedError(err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return nil, networkError(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	c.log.DebugContext(ctx, "request completed",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode >= 400 {
		apiErr := classifyStatus(resp.StatusCode, data)
		if apiErr.Kind == KindUnauthenticated && c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return nil, apiErr
	}

	return data, nil
}
