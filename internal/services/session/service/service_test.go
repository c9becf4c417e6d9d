package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	perr "dataproc/internal/platform/errors"
	"dataproc/internal/services/session/domain"
	"dataproc/internal/services/session/store"
)

type fakeAuth struct {
	token    string
	err      error
	logins   []domain.Credentials
	register []domain.Registration
}

func (f *fakeAuth) Login(_ context.Context, c domain.Credentials) (string, error) {
	f.logins = append(f.logins, c)
	return f.token, f.err
}

func (f *fakeAuth) Register(_ context.Context, r domain.Registration) (json.RawMessage, error) {
	f.register = append(f.register, r)
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(`{"id":1}`), nil
}

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func signed(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestLogin_StoresTokenAndReportsClaims(t *testing.T) {
	tok := signed(t, "user-7", fixedNow.Add(time.Hour))
	auth := &fakeAuth{token: tok}
	s := New(auth, store.NewMemory(), func() time.Time { return fixedNow })

	st, err := s.Login(context.Background(), domain.Credentials{Email: " john@xyz.com ", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if !st.SignedIn || st.Subject != "user-7" || st.Opaque || st.Expired {
		t.Fatalf("status = %+v", st)
	}
	if st.ExpiresAt == nil || !st.ExpiresAt.Equal(fixedNow.Add(time.Hour).Truncate(time.Second)) {
		t.Fatalf("expires_at = %v", st.ExpiresAt)
	}
	if auth.logins[0].Email != "john@xyz.com" {
		t.Fatalf("email not trimmed: %q", auth.logins[0].Email)
	}
	if got, ok := s.Token(context.Background()); !ok || got != tok {
		t.Fatalf("Token = %q %v", got, ok)
	}
	if strings.Contains(st.TokenHint, tok[8:len(tok)-8]) {
		t.Fatalf("token hint leaks the token: %q", st.TokenHint)
	}
}

func TestLogin_ValidationAndFailures(t *testing.T) {
	cases := []struct {
		name  string
		creds domain.Credentials
		auth  *fakeAuth
		code  perr.ErrorCode
		calls int
	}{
		{"bad email", domain.Credentials{Email: "nope", Password: "x"}, &fakeAuth{token: "t"}, perr.ErrorCodeValidation, 0},
		{"no password", domain.Credentials{Email: "a@b.co"}, &fakeAuth{token: "t"}, perr.ErrorCodeValidation, 0},
		{"rejected", domain.Credentials{Email: "a@b.co", Password: "x"}, &fakeAuth{err: perr.Unauthorizedf("bad credentials")}, perr.ErrorCodeUnauthorized, 1},
		{"empty token", domain.Credentials{Email: "a@b.co", Password: "x"}, &fakeAuth{}, perr.ErrorCodeUpstream, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.auth, store.NewMemory(), nil)
			_, err := s.Login(context.Background(), tc.creds)
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v (%v), want %v", perr.CodeOf(err), err, tc.code)
			}
			if len(tc.auth.logins) != tc.calls {
				t.Fatalf("auth calls = %d, want %d", len(tc.auth.logins), tc.calls)
			}
			if _, ok := s.Token(context.Background()); ok {
				t.Fatalf("token stored after failure")
			}
		})
	}
}

func TestStatus_OpaqueAndExpired(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := New(&fakeAuth{}, mem, func() time.Time { return fixedNow })

	st, err := s.Status(ctx)
	if err != nil || st.SignedIn {
		t.Fatalf("empty status = %+v %v", st, err)
	}

	_ = mem.Save(ctx, domain.Record{Token: "not-a-jwt-at-all", Email: "a@b.co"})
	st, _ = s.Status(ctx)
	if !st.SignedIn || !st.Opaque || st.Email != "a@b.co" || st.TokenHint != "not-********-all" {
		t.Fatalf("opaque status = %+v", st)
	}

	_ = mem.Save(ctx, domain.Record{Token: signed(t, "u", fixedNow.Add(-time.Minute))})
	st, _ = s.Status(ctx)
	if !st.Expired || st.Opaque {
		t.Fatalf("expired status = %+v", st)
	}
}

func TestRegisterAndLogout(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{token: "t"}
	s := New(auth, store.NewMemory(), nil)

	if _, err := s.Register(ctx, domain.Registration{Email: "a@b.co", Password: "123"}); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("short password err = %v", err)
	}
	out, err := s.Register(ctx, domain.Registration{Email: "a@b.co", Password: "hunter22", RollNumber: " ABC123 "})
	if err != nil || string(out) != `{"id":1}` {
		t.Fatalf("Register = %s %v", out, err)
	}
	if auth.register[0].RollNumber != "ABC123" {
		t.Fatalf("roll number not trimmed: %q", auth.register[0].RollNumber)
	}
	if _, ok := s.Token(ctx); ok {
		t.Fatalf("register must not sign in")
	}

	auth.err = errors.New("boom")
	if _, err := s.Register(ctx, domain.Registration{Email: "a@b.co", Password: "hunter22"}); err == nil {
		t.Fatalf("expected auth error")
	}

	auth.err = nil
	if _, err := s.Login(ctx, domain.Credentials{Email: "a@b.co", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Token(ctx); ok {
		t.Fatalf("token survived logout")
	}
}
