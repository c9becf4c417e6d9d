package httpkit

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var versionRe = regexp.MustCompile(`^v[1-9][0-9]*$`)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts a subrouter under /api/{version} with the scope's middleware.
// version is "v1", "v2", ...; a leading slash is tolerated, anything else panics.
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
//	  submissions.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	ver := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(version), "/"))
	if !versionRe.MatchString(ver) {
		panic(fmt.Sprintf("httpkit: invalid API version %q", version))
	}
	MountUnder(r, "/api/"+ver, mw, mount)
}

// MountAPIV1 is MountAPI for v1, where every console module lives
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
