package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "dashboard/internal/platform/errors"
)

func newTestClient(max int) (*Client, *[]time.Duration) {
	c := NewClient(Options{Name: "test", MaxRetries: max, RetryBase: 10 * time.Millisecond})
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestGet_PassesHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Referer") != "http://translate.google.com/" {
			t.Errorf("referer = %q", r.Header.Get("Referer"))
		}
		if r.Header.Get("User-Agent") != "Mozilla/5.0" {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	c, _ := newTestClient(0)
	resp, err := c.Get(context.Background(), srv.URL, http.Header{"Referer": {"http://translate.google.com/"}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "ok" {
		t.Fatalf("body = %q", b)
	}
}

func TestGet_RetriesTransientThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, "{}")
	}))
	defer srv.Close()

	c, slept := newTestClient(3)
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	_ = resp.Body.Close()
	if hits.Load() != 3 {
		t.Fatalf("hits = %d", hits.Load())
	}
	if len(*slept) != 2 || (*slept)[0] != 10*time.Millisecond || (*slept)[1] != 20*time.Millisecond {
		t.Fatalf("backoff = %v", *slept)
	}
}

func TestGet_HonoursRetryAfter(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, "{}")
	}))
	defer srv.Close()

	c, slept := newTestClient(1)
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	_ = resp.Body.Close()
	if len(*slept) != 1 || (*slept)[0] != 2*time.Second {
		t.Fatalf("slept = %v", *slept)
	}
}

func TestGet_DefinitiveFailureNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := newTestClient(3)
	_, err := c.Get(context.Background(), srv.URL, nil)
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("err = %v (code %v)", err, perr.CodeOf(err))
	}
	if hits.Load() != 1 {
		t.Fatalf("hits = %d", hits.Load())
	}
}

func TestGet_GivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, slept := newTestClient(2)
	_, err := c.Get(context.Background(), srv.URL, nil)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if len(*slept) != 2 {
		t.Fatalf("retries = %d", len(*slept))
	}
}

func TestGet_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(-1)
	_, err := c.Get(context.Background(), url, nil)
	if err == nil || !perr.Retryable(err) {
		t.Fatalf("err = %v, want retryable transport failure", err)
	}
}

func TestGet_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _ := newTestClient(0)
	if _, err := c.Get(ctx, "http://127.0.0.1:1", nil); err != context.Canceled {
		t.Fatalf("err = %v", err)
	}
}

func TestBackoffCap(t *testing.T) {
	c, _ := newTestClient(0)
	if d := c.backoff(20); d != maxBackoff {
		t.Fatalf("backoff(20) = %v", d)
	}
	if d := retryAfter(http.Header{"Retry-After": {"3600"}}); d != maxBackoff {
		t.Fatalf("retryAfter cap = %v", d)
	}
	if d := retryAfter(http.Header{"Retry-After": {"Wed, 21 Oct 2015 07:28:00 GMT"}}); d != 0 {
		t.Fatalf("retryAfter date form = %v", d)
	}
}
