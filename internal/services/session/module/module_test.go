package module

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"dataproc/internal/adapters/bfhl"
	modkit "dataproc/internal/modkit"
	"dataproc/internal/modkit/module"
	phttp "dataproc/internal/platform/net/http"
	"dataproc/internal/platform/testkit"
	"dataproc/internal/services/session/store"
)

func remote(t *testing.T) *bfhl.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/login" && strings.Contains(string(body), `"password":"right"`):
			_, _ = io.WriteString(w, `{"token":"opaque-token-value"}`)
		case r.URL.Path == "/login":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Invalid credentials"}`)
		case r.URL.Path == "/register":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":42}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return bfhl.NewClient(bfhl.Options{BaseURL: srv.URL, HTTP: srv.Client()})
}

type env struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, env) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	var e env
	if rec.Code != http.StatusNoContent {
		_ = json.Unmarshal(rec.Body.Bytes(), &e)
	}
	return rec.Code, e
}

func TestSessionModule_Flow(t *testing.T) {
	m := New(modkit.Deps{Remote: remote(t)}, modkit.WithPorts(Options{Store: store.NewMemory()}))
	if m.Name() != "session" {
		t.Fatalf("Name = %q", m.Name())
	}
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	code, e := call(t, mux, http.MethodGet, "/session/", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	testkit.MustContain(t, string(e.Data), `"signed_in":false`)

	code, e = call(t, mux, http.MethodPost, "/session/login", `{"email":"a@b.co","password":"wrong"}`)
	if code != http.StatusUnauthorized || e.Error != "Invalid credentials" {
		t.Fatalf("bad login = %d %+v", code, e)
	}

	code, e = call(t, mux, http.MethodPost, "/session/login", `{"email":"a@b.co"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("missing password = %d %+v", code, e)
	}

	code, e = call(t, mux, http.MethodPost, "/session/login", `{"email":"a@b.co","password":"right"}`)
	if code != http.StatusOK {
		t.Fatalf("login = %d %+v", code, e)
	}
	testkit.MustContain(t, string(e.Data), `"opaque":true`)

	tokens := module.MustPortsOf[TokenSource](m)
	if tok, ok := tokens.Token(t.Context()); !ok || tok != "opaque-token-value" {
		t.Fatalf("Token = %q %v", tok, ok)
	}

	code, e = call(t, mux, http.MethodPost, "/session/register", `{"email":"c@d.co","password":"hunter22"}`)
	if code != http.StatusCreated || string(e.Data) != `{"id":42}` {
		t.Fatalf("register = %d %s", code, e.Data)
	}

	if code, _ = call(t, mux, http.MethodPost, "/session/logout", ""); code != http.StatusNoContent {
		t.Fatalf("logout = %d", code)
	}
	if _, ok := tokens.Token(t.Context()); ok {
		t.Fatalf("token survived logout")
	}

	// DELETE on the session resource is the same logout
	if code, _ = call(t, mux, http.MethodPost, "/session/login", `{"email":"a@b.co","password":"right"}`); code != http.StatusOK {
		t.Fatalf("second login = %d", code)
	}
	if code, _ = call(t, mux, http.MethodDelete, "/session/", ""); code != http.StatusNoContent {
		t.Fatalf("delete = %d", code)
	}
	if _, ok := tokens.Token(t.Context()); ok {
		t.Fatalf("token survived delete")
	}
}

func TestSessionModule_RequiresRemote(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}) })
}
