package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"dataproc/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	// MaxBody caps request bodies in bytes, 0 leaves them uncapped
	MaxBody int64
	// Timeout bounds each request, 0 means 60s
	Timeout time.Duration
	// Slow requests log at warn, 0 disables
	Slow time.Duration
}

// CommonStack returns the baseline middleware for the /api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,
		middleware.MaxBody(o.MaxBody),

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow:          o.Slow,
			QuietSuffixes: []string{"/meta/health", "/meta/ready"},
		}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}
