package middleware

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestAccessEvent_Levels(t *testing.T) {
	opt := AccessLogOptions{Slow: time.Second, QuietSuffixes: []string{"/meta/health"}}
	cases := []struct {
		name    string
		path    string
		status  int
		elapsed time.Duration
		want    string
	}{
		{"ok", "/api/v1/submissions", http.StatusOK, time.Millisecond, `"level":"info"`},
		{"upstream failure", "/api/v1/submissions", http.StatusBadGateway, time.Millisecond, `"level":"error"`},
		{"slow", "/api/v1/submissions", http.StatusOK, 2 * time.Second, `"slow":true`},
		{"client error", "/api/v1/submissions/json", http.StatusBadRequest, time.Millisecond, `"level":"warn"`},
		{"probe", "/api/v1/meta/health", http.StatusOK, time.Millisecond, `"level":"debug"`},
		{"failing probe is not quiet", "/api/v1/meta/health", http.StatusServiceUnavailable, time.Millisecond, `"level":"error"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf).Level(zerolog.TraceLevel)
			accessEvent(&l, opt, tc.path, tc.status, tc.elapsed).Msg("request done")
			if !bytes.Contains(buf.Bytes(), []byte(tc.want)) {
				t.Fatalf("log %s missing %s", buf.String(), tc.want)
			}
		})
	}
}
