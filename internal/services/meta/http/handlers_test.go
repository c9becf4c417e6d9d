package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "dataproc/internal/platform/net/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return rec.Code
}

func TestMeta_HealthServiceVersion(t *testing.T) {
	started := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	d := Deps{
		ServiceName: "dataproc-console",
		StartedAt:   started,
		Now:         func() time.Time { return started.Add(5 * time.Minute) },
	}

	var h HealthResponse
	if code := get(t, d, "/health", &h); code != http.StatusOK || !h.OK || h.Now != "2026-10-17T09:05:00Z" {
		t.Fatalf("health = %d %+v", code, h)
	}

	var s ServiceResponse
	if get(t, d, "/service", &s); s.Uptime != 300 || s.Name != "dataproc-console" {
		t.Fatalf("service = %+v", s)
	}

	var v struct {
		Service string `json:"service"`
	}
	if get(t, d, "/version", &v); v.Service != "dataproc-console" {
		t.Fatalf("version = %+v", v)
	}
}

func TestMeta_Ready(t *testing.T) {
	cases := []struct {
		name   string
		remote Pinger
		want   string
		check  string
	}{
		{"no remote", nil, "degraded", "skipped"},
		{"reachable", pinger{}, "ok", "ok"},
		{"down", pinger{err: errors.New("connection refused")}, "degraded", "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r ReadyResponse
			get(t, Deps{Remote: tc.remote, RemoteURL: "http://x"}, "/ready", &r)
			if r.Status != tc.want || len(r.Checks) != 1 || r.Checks[0].Status != tc.check {
				t.Fatalf("ready = %+v", r)
			}
		})
	}
}
