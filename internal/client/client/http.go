package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/dmitrijs2005/streamtube/internal/logging"
	"github.com/dmitrijs2005/streamtube/internal/netx"
	"golang.org/x/time/rate"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 8 << 20

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	hooks   []RequestHook
	limiter *rate.Limiter
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. The timeout passed to
// New is not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithRateLimit throttles outbound requests to rps per second. rps <= 0
// disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHooks appends hooks that run after the built-in ones.
func WithHooks(hooks ...RequestHook) Option {
	return func(c *HTTPClient) { c.hooks = append(c.hooks, hooks...) }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// New builds a client for the API rooted at baseURL. tokens may be nil for
// an anonymous client.
func New(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		hooks:   []RequestHook{RequestIDHook()},
		log:     logging.Discard(),
	}
	if tokens != nil {
		c.hooks = append(c.hooks, AuthHook(tokens))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends one request and decodes the envelope's data into out, which may
// be nil.
func (c *HTTPClient) do(ctx context.Context, method, target string, body Body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	var (
		reader      io.Reader
		contentType string
		kind        = BodyNone
	)
	if body != nil {
		r, ct, err := body.encode()
		if err != nil {
			return err
		}
		reader, contentType, kind = r, ct, body.Kind()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		if rc, ok := reader.(io.Closer); ok {
			_ = rc.Close()
		}
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set(common.ContentTypeHeaderName, contentType)
	}
	req.Header.Set("Accept", common.ContentTypeJSON)
	for _, h := range c.hooks {
		h(req, kind)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api call",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"elapsed", time.Since(start),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return c.mapError(ctx, err)
	}

	var env models.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// mapError turns transport failures into ErrUnavailable. Cancellation by the
// caller is returned as is.
func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func (c *HTTPClient) endpoint(query url.Values, segments ...string) string {
	return netx.ResolveURL(c.baseURL, query, segments...)
}
