// Package bfhl is the HTTP client for the BFHL processing service
package bfhl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "dataproc/internal/platform/errors"
	"dataproc/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	baseURLDefault = "http://localhost:3000"
	defaultTimeout = 30 * time.Second
	defaultUA      = "dataproc"
	defaultMaxBody = 4 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// MaxBody caps how much of a response is read, 4 MiB when zero
	MaxBody int64

	// HTTP overrides the transport, tests pass httptest clients here
	HTTP *http.Client
}

// Client talks to the processing service. It never retries: every call is one request.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with defaults applied
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBody <= 0 {
		o.MaxBody = defaultMaxBody
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("bfhl"),
		now:  time.Now,
	}
}

// BaseURL reports the service root the client targets
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// do sends one request and returns the status and the body.
// Transport failures come back as ErrorCodeUnavailable, a body over
// MaxBody as a *BodyLimitError with ErrorCodeUpstream.
func (c *Client) do(ctx context.Context, method, path, token string, in any) (int, []byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, perr.Wrapf(err, perr.ErrorCodeJSON, "bfhl encode %s body", path)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, body)
	if err != nil {
		return 0, nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "bfhl new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Dur("latency", lat).Msg("bfhl transport error")
		return 0, nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bfhl %s %s failed", method, path)
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Bool("auth", token != "").
		Msg("bfhl http response")

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBody+1))
	if err != nil {
		return resp.StatusCode, nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bfhl read %s body", path)
	}
	if int64(len(b)) > c.opts.MaxBody {
		le := &BodyLimitError{Path: path, Status: resp.StatusCode, Limit: c.opts.MaxBody}
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Int64("limit", le.Limit).Msg("bfhl response too large")
		return resp.StatusCode, nil, perr.Wrap(le, perr.ErrorCodeUpstream, "bfhl response too large")
	}
	return resp.StatusCode, b, nil
}

// requestID reuses the submission id on ctx so both sides log the same value
func requestID(ctx context.Context) string {
	if id := logger.SubmissionID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func success(status int) bool { return status >= 200 && status < 300 }
