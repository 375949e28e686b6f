package jukeaudio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	// APIVersion is the Juke Audio REST API version this library speaks.
	APIVersion = "v2"

	// DefaultIdleConnTimeout is how long pooled device connections stay open.
	DefaultIdleConnTimeout = 90 * time.Second
)

// Client is a Juke Audio device API client.
//
// A Client is bound to one device host and one set of credentials. It holds
// no mutable state after NewClient returns and is safe for concurrent use.
// The library imposes no request timeout of its own: deadlines and
// cancellation come from the context passed to each method, or from
// WithTimeout.
type Client struct {
	host       string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	timeout    *time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A nil client keeps the default.
// The client is copied if a timeout or metrics are configured, so the
// caller's value is never modified.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets an HTTP request timeout.
// This option can be applied in any order relative to other options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// NewClient creates a client for the Juke device at host ("192.168.1.20" or
// "juke.local:8080", no scheme). Credentials are not validated locally.
// Returns ErrEmptyHost if host is blank.
func NewClient(host, username, password string, opts ...Option) (*Client, error) {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return nil, ErrEmptyHost
	}

	c := &Client{
		host:     host,
		username: username,
		password: password,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     DefaultIdleConnTimeout,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tracer == nil {
		c.tracer = defaultTracer()
	}
	if c.timeout != nil || c.metrics != nil {
		wrapped := *c.httpClient
		if c.timeout != nil {
			wrapped.Timeout = *c.timeout
		}
		if c.metrics != nil {
			wrapped.Transport = c.metrics.Wrap(wrapped.Transport)
		}
		c.httpClient = &wrapped
	}

	return c, nil
}

// Host returns the device address the client talks to.
func (c *Client) Host() string {
	return c.host
}

// AuthToken returns the bearer token the device expects: the standard base64
// encoding of "username:password". It is recomputed on every call.
func AuthToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// call describes one HTTP exchange with the device.
type call struct {
	op          string // operation name, used for logs, metrics and spans
	method      string
	route       string // path template, e.g. /zones/{id}/volume
	path        string // path below the API root, ids interpolated verbatim
	versioned   bool
	body        []byte
	contentType string
	// unauthenticated calls send no Authorization header.
	unauthenticated bool
	// anyStatus skips the 200 check.
	anyStatus bool
}

func (c *Client) url(cl call) string {
	if cl.versioned {
		return "http://" + c.host + "/api/" + APIVersion + cl.path
	}
	return "http://" + c.host + "/api" + cl.path
}

// do performs one request and returns the response body.
// Transport and read failures become *UnexpectedError; any status other
// than 200 becomes *AuthenticationError unless the call sets anyStatus.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	ctx, span := c.startSpan(ctx, cl)
	defer span.End()
	ctx = withOperation(ctx, cl.op)

	start := time.Now()
	c.LogRequest(ctx, cl.method, cl.path)

	data, status, err := c.roundTrip(ctx, cl)
	if err == nil && !cl.anyStatus && status != http.StatusOK {
		err = &AuthenticationError{
			Method:     cl.method,
			Path:       cl.path,
			StatusCode: status,
			Body:       truncatePreview(data),
		}
	}

	c.LogResponse(ctx, cl.method, cl.path, status, time.Since(start), err)
	endSpan(span, status, err)

	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) roundTrip(ctx context.Context, cl call) ([]byte, int, error) {
	var reqBody io.Reader
	if cl.body != nil {
		reqBody = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl), reqBody)
	if err != nil {
		return nil, 0, &UnexpectedError{Op: cl.op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	if !cl.unauthenticated {
		req.Header.Set("Authorization", "Bearer "+AuthToken(c.username, c.password))
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &UnexpectedError{Op: cl.op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &UnexpectedError{Op: cl.op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return data, resp.StatusCode, nil
}

// getJSON performs an authenticated GET below the versioned API root and
// decodes the body into T.
func getJSON[T any](ctx context.Context, c *Client, op, route, path string) (T, error) {
	var out T
	data, err := c.do(ctx, call{
		op:        op,
		method:    http.MethodGet,
		route:     route,
		path:      path,
		versioned: true,
	})
	if err != nil {
		return out, err
	}
	if err := decode(op, data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// putText performs an authenticated PUT and returns the device's plain-text acknowledgement.
func (c *Client) putText(ctx context.Context, op, route, path, contentType string, body []byte) (string, error) {
	data, err := c.do(ctx, call{
		op:          op,
		method:      http.MethodPut,
		route:       route,
		path:        path,
		versioned:   true,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode unmarshals a response body, reporting failures as *UnexpectedError.
func decode(op string, data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &UnexpectedError{
			Op:  op,
			Err: fmt.Errorf("failed to parse response: %w (body: %s)", err, truncatePreview(data)),
		}
	}
	return nil
}
