package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"dashboard/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	Slow        time.Duration
	// Heartbeat answers GET/HEAD on this exact path with "." when set
	Heartbeat string
}

// CommonStack returns the baseline middleware slice for the dashboard server
// every response, static or API, is uncacheable
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),
	}
	if o.Heartbeat != "" {
		stack = append(stack, middleware.Heartbeat(o.Heartbeat))
	}
	return append(stack,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	)
}
