// Package upstream provides a small resilient HTTP client for the third-party
// APIs the dashboard proxies (weather, speech)
package upstream

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "Mozilla/5.0"
	defaultMaxRetry  = 2
	defaultRetryBase = 250 * time.Millisecond
	maxBackoff       = 5 * time.Second
)

// Options configures the Client
type Options struct {
	// Name tags log lines and error messages, e.g. "weather"
	Name      string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transport failures and transient statuses
	// MaxRetries < 0 disables retries
	MaxRetries int
	RetryBase  time.Duration

	// Transport overrides the http transport (tests)
	Transport http.RoundTripper
}

// Client issues GET requests with retry on transient failures
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.Name == "" {
		o.Name = "upstream"
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout, Transport: o.Transport},
		opts:  o,
		log:   *logger.Named(o.Name),
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Name returns the client's label
func (c *Client) Name() string { return c.opts.Name }

// Get fetches url with the given extra headers. On success the caller owns
// resp.Body. Failures are perr errors: Timeout/Unavailable/TooManyRequests are
// retryable, Upstream is a definitive non-success answer
func (c *Client) Get(ctx context.Context, url string, header http.Header) (*http.Response, error) {
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Name)
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		var failure error
		var wait time.Duration
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failure = perr.FromTransport(err, c.opts.Name+" request failed")
		} else {
			c.log.Debug().
				Int("status", resp.StatusCode).
				Int("attempt", attempts).
				Dur("latency", lat).
				Msg("upstream http response")

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}
			wait = retryAfter(resp.Header)
			failure = perr.FromUpstream(resp.StatusCode, c.opts.Name+" unexpected status "+strconv.Itoa(resp.StatusCode))
			_ = drainAndClose(resp.Body)
		}

		if !perr.Retryable(failure) || attempts >= c.opts.MaxRetries {
			return nil, failure
		}
		if wait <= 0 {
			wait = c.backoff(attempts)
		}
		c.log.Warn().Err(failure).Dur("retry_in", wait).Int("attempt", attempts).Msg("upstream transient error retrying")
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
		attempts++
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

// retryAfter reads a seconds-valued Retry-After, capped at maxBackoff
func retryAfter(h http.Header) time.Duration {
	s, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || s <= 0 {
		return 0
	}
	d := time.Duration(s) * time.Second
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
