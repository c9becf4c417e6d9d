// Package service manages the caller's session token
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	perr "dataproc/internal/platform/errors"
	"dataproc/internal/platform/logger"
	bind "dataproc/internal/platform/net/http/bind"
	str "dataproc/internal/platform/strings"
	ptime "dataproc/internal/platform/time"
	"dataproc/internal/services/session/domain"
)

// tokenClaims is the subset of claims the session reads for display
type tokenClaims struct {
	Email  string `json:"email,omitempty"`
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// Service wraps an Authenticator and a Store
type Service struct {
	auth  domain.Authenticator
	store domain.Store
	now   func() time.Time
}

// New builds a session service. now may be nil.
func New(auth domain.Authenticator, store domain.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{auth: auth, store: store, now: now}
}

// Login validates credentials, authenticates and stores the token
func (s *Service) Login(ctx context.Context, c domain.Credentials) (domain.Status, error) {
	c.Email = strings.TrimSpace(c.Email)
	if err := bind.Validate(c); err != nil {
		return domain.Status{}, err
	}
	tok, err := s.auth.Login(ctx, c)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("email", c.Email).Msg("login failed")
		return domain.Status{}, err
	}
	if strings.TrimSpace(tok) == "" {
		return domain.Status{}, perr.Upstreamf("login returned an empty token")
	}
	rec := domain.Record{Token: tok, Email: c.Email, SavedAt: s.now().UTC()}
	if err := s.store.Save(ctx, rec); err != nil {
		return domain.Status{}, err
	}
	logger.C(ctx).Info().Str("email", c.Email).Msg("signed in")
	return s.status(rec), nil
}

// Register creates an account. It does not sign in.
func (s *Service) Register(ctx context.Context, r domain.Registration) (json.RawMessage, error) {
	r.Email = strings.TrimSpace(r.Email)
	r.FullName = strings.TrimSpace(r.FullName)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	if err := bind.Validate(r); err != nil {
		return nil, err
	}
	out, err := s.auth.Register(ctx, r)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("email", r.Email).Msg("registration failed")
		return nil, err
	}
	logger.C(ctx).Info().Str("email", r.Email).Msg("registered")
	return out, nil
}

// Logout drops the stored token
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Token returns the stored token, if any. Store failures read as signed out.
func (s *Service) Token(ctx context.Context) (string, bool) {
	rec, ok, err := s.store.Load(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("session load failed")
		return "", false
	}
	if !ok || rec.Token == "" {
		return "", false
	}
	return rec.Token, true
}

// Status describes the stored session
func (s *Service) Status(ctx context.Context) (domain.Status, error) {
	rec, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	if !ok {
		return domain.Status{}, nil
	}
	return s.status(rec), nil
}

func (s *Service) status(rec domain.Record) domain.Status {
	st := domain.Status{
		SignedIn:  true,
		Email:     rec.Email,
		TokenHint: str.Mask(rec.Token, 4),
		SavedAt:   ptime.Ptr(rec.SavedAt),
	}

	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(rec.Token, &claims); err != nil {
		st.Opaque = true
		return st
	}
	st.Subject = str.FirstNonEmpty(claims.Subject, claims.UserID)
	st.Email = str.FirstNonEmpty(st.Email, claims.Email)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		st.ExpiresAt = ptime.Ptr(exp.Time)
		st.Expired = !s.now().Before(exp.Time)
	}
	return st
}
