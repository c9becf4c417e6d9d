package middleware

import (
	"net/http"
	"strings"
	"time"

	"dataproc/internal/platform/logger"

	"github.com/rs/zerolog"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking at least Slow at warn level, 0 disables
	Slow time.Duration
	// QuietSuffixes are path suffixes logged at debug, e.g. polled health probes
	QuietSuffixes []string
}

type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// AccessLogZerolog logs one line per request with status, latency and body sizes.
// 5xx logs at error, slow requests and 4xx at warn, quiet paths at debug.
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := accessEvent(log, opt, r.URL.Path, cw.status, elapsed)
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("bytes_in", r.ContentLength).
				Int("bytes_out", cw.bytes).
				Msg("request done")
		})
	}
}

func accessEvent(log *logger.Logger, opt AccessLogOptions, path string, status int, elapsed time.Duration) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case opt.Slow > 0 && elapsed >= opt.Slow:
		return log.Warn().Bool("slow", true)
	case status >= http.StatusBadRequest:
		return log.Warn()
	}
	for _, s := range opt.QuietSuffixes {
		if s != "" && strings.HasSuffix(path, s) {
			return log.Debug()
		}
	}
	return log.Info()
}
