package http

import (
	"net"
	stdhttp "net/http"

	perr "dataproc/internal/platform/errors"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts chi's pprof bundle under prefix when enabled.
// Only loopback peers are served; everyone else gets a 403 envelope.
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := loopbackOnly(stdhttp.StripPrefix(prefix, mw.Profiler()))
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}

// loopbackOnly checks the socket peer, never forwarded headers
func loopbackOnly(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			RespondError(w, r, perr.Forbiddenf("profiler is only served to local clients"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
