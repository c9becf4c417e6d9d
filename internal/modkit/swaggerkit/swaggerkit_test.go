package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "dataproc/internal/platform/net/http"
	"dataproc/internal/platform/testkit"
)

func fetchSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &spec)
	return rec.Code, spec
}

func TestDocJSON_GeneratedSpec(t *testing.T) {
	code, spec := fetchSpec(t)
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v, want downconverted 3.0.3", spec["openapi"])
	}
	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/submissions", "/session/login", "/notifications", "/operation-code", "/meta/health"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
	post := paths["/submissions"].(map[string]any)["post"].(map[string]any)
	resp := post["responses"].(map[string]any)
	if _, ok := resp["500"]; !ok {
		t.Fatalf("default 500 not injected")
	}
	if _, ok := resp["502"]; !ok {
		t.Fatalf("submissions should document 502")
	}
	health := paths["/meta/health"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if _, ok := health["502"]; ok {
		t.Fatalf("meta never calls the processing service, 502 should be absent")
	}
	if _, ok := health["400"]; !ok {
		t.Fatalf("default 400 not injected")
	}
	servers, _ := spec["servers"].([]any)
	if len(servers) != 1 || servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", spec["servers"])
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema not added")
	}
}

func TestDocJSON_MutatorsAndBadDoc(t *testing.T) {
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-console"] = true })
	Register(nil)

	_, spec := fetchSpec(t)
	if spec["x-console"] != true {
		t.Fatalf("mutator not applied")
	}

	testkit.Swap(t, &docReader, func() string { return "{nope" })
	if code, _ := fetchSpec(t); code != http.StatusInternalServerError {
		t.Fatalf("bad doc code = %d", code)
	}
}

func TestDocJSON_TitleSuffix(t *testing.T) {
	t.Setenv("DATAPROC_CONSOLE_DOCS_TITLE_SUFFIX", "(staging)")
	_, spec := fetchSpec(t)
	title, _ := spec["info"].(map[string]any)["title"].(string)
	testkit.MustContain(t, title, " (staging)")
}

func TestEnsureServers(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
	}{
		{"swagger 2", map[string]any{"swagger": "2.0"}},
		{"oas 3.1", map[string]any{"openapi": "3.1.0"}},
		{"no version", map[string]any{}},
		{"already 3.0", map[string]any{"openapi": "3.0.3", "servers": []any{"kept"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ensureServers(tc.in, "/api/v1")
			if tc.in["openapi"] != "3.0.3" {
				t.Fatalf("openapi = %v", tc.in["openapi"])
			}
			if _, ok := tc.in["swagger"]; ok {
				t.Fatalf("swagger key left behind")
			}
			if s, _ := tc.in["servers"].([]any); len(s) != 1 {
				t.Fatalf("servers = %v", tc.in["servers"])
			}
		})
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d", rec.Code)
	}
}
