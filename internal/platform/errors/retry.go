package errors

// Upstream helpers for mapping HTTP status codes and transport failures to
// project ErrorCode, and retry semantics for outbound calls

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// UpstreamCode maps an upstream HTTP status to an ErrorCode with an ok flag
// !ok means status is a success and there is nothing to map
func UpstreamCode(status int) (ErrorCode, bool) {
	switch {
	case status >= 200 && status < 400:
		return ErrorCodeUnknown, false
	case status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests, true
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrorCodeTimeout, true
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeUpstream, true
}

// FromUpstream wraps a non-success upstream status with a mapped ErrorCode and message
// Returns nil for success statuses
func FromUpstream(status int, msg string) error {
	code, ok := UpstreamCode(status)
	if !ok {
		return nil
	}
	return Wrap(fmt.Errorf("upstream status %d", status), code, msg)
}

// FromTransport classifies a transport level error (dial, timeout, reset)
// If err is nil, returns nil
func FromTransport(err error, msg string) error {
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return Wrap(err, ErrorCodeTimeout, msg)
	}
	return Wrap(err, ErrorCodeUnavailable, msg)
}

// IsRetryable reports whether an outbound call failure is a transient condition
// worth retrying. It handles structured codes from FromUpstream/FromTransport
// and raw network errors from net/http
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Do not retry local cancellations; let the caller decide higher-level retries
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	if e, ok := As(err); ok {
		switch e.Code() {
		case ErrorCodeUnavailable, ErrorCodeTooManyRequests, ErrorCodeTimeout:
			return true
		case ErrorCodeUnknown:
			// foreign cause wrapped without a code; inspect it below
		default:
			return false
		}
	}

	if isTimeout(err) {
		return true
	}
	if stderrs.Is(err, syscall.ECONNRESET) || stderrs.Is(err, syscall.ECONNREFUSED) || stderrs.Is(err, syscall.EPIPE) {
		return true
	}

	// Fallback: text emitted by net/http when a keep-alive connection dies under us
	s := strings.ToLower(cause(err).Error())
	switch {
	case strings.Contains(s, "connection reset by peer"),
		strings.Contains(s, "server closed idle connection"),
		strings.Contains(s, "unexpected eof"),
		strings.Contains(s, "tls handshake timeout"):
		return true
	default:
		return false
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return stderrs.As(err, &ne) && ne.Timeout()
}

// cause returns the deepest wrapped error
func cause(err error) error {
	for {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
}
