package jukeaudio

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// WithLogger configures a structured logger for the client.
// When set, the client logs every API request and response. Credentials
// and the Authorization header are never logged.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client, _ := jukeaudio.NewClient("192.168.1.20", "admin", "secret", jukeaudio.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// LoggingTransport wraps an http.RoundTripper and logs requests/responses.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper with logging.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Logger != nil {
		t.Logger.LogAttrs(req.Context(), slog.LevelDebug, "http_request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
		)
	}

	resp, err := base.RoundTrip(req)
	duration := time.Since(start)

	if t.Logger != nil {
		if err != nil {
			t.Logger.LogAttrs(req.Context(), slog.LevelError, "http_error",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Duration("duration", duration),
				slog.String("error", err.Error()),
			)
		} else {
			level := slog.LevelDebug
			if resp.StatusCode != http.StatusOK {
				level = slog.LevelWarn
			}
			t.Logger.LogAttrs(req.Context(), level, "http_response",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration),
			)
		}
	}

	return resp, err
}

// LogRequest logs an API request. This is the low-level logging method
// used internally and can be used for custom request logging.
func (c *Client) LogRequest(ctx context.Context, method, path string) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "api_request",
		slog.String("host", c.host),
		slog.String("method", method),
		slog.String("path", path),
	)
}

// LogResponse logs an API response. A rejected request logs at warn level,
// a failed exchange at error level.
func (c *Client) LogResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelDebug
	if statusCode != 0 && statusCode != http.StatusOK {
		level = slog.LevelWarn
	}
	if statusCode >= 500 || IsUnexpected(err) {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("host", c.host),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "api_response", attrs...)
}

// NewLoggingClient creates a client with request/response logging enabled
// both at the API level and on the HTTP transport.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	client, err := jukeaudio.NewLoggingClient("192.168.1.20", "admin", "secret", logger)
func NewLoggingClient(host, username, password string, logger *slog.Logger, opts ...Option) (*Client, error) {
	transport := &LoggingTransport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     DefaultIdleConnTimeout,
		},
		Logger: logger,
	}

	httpClient := &http.Client{
		Transport: transport,
	}

	allOpts := append([]Option{WithHTTPClient(httpClient), WithLogger(logger)}, opts...)

	return NewClient(host, username, password, allOpts...)
}
