// Package http exposes the session over the console API
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"dataproc/internal/modkit/httpkit"
	"dataproc/internal/services/session/domain"
)

// Service is what the handlers need from the session service
type Service interface {
	Login(ctx context.Context, c domain.Credentials) (domain.Status, error)
	Register(ctx context.Context, r domain.Registration) (json.RawMessage, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (domain.Status, error)
}

type handlers struct {
	svc Service
}

// Register mounts the session routes
func Register(r httpkit.Router, svc Service) {
	h := &handlers{svc: svc}

	httpkit.Get(r, "/", h.status)
	httpkit.PostJSON(r, "/login", h.login)
	httpkit.PostJSON(r, "/register", h.register)
	httpkit.Post(r, "/logout", h.logout)
	httpkit.Delete(r, "/", h.logout)
}

// swagger:route GET /session Session sessionStatus
// @Summary Current session, token claims are unverified
// @Tags Session
// @Produce json
// @Success 200 {object} domain.Status
// @Router /session [get]
func (h *handlers) status(r *http.Request) (any, error) {
	return h.svc.Status(r.Context())
}

// swagger:route POST /session/login Session sessionLogin
// @Summary Sign in against the processing service and keep the token
// @Tags Session
// @Accept json
// @Produce json
// @Param body body domain.Credentials true "credentials"
// @Success 200 {object} domain.Status
// @Failure 401 {object} httpkit.Envelope
// @Router /session/login [post]
func (h *handlers) login(r *http.Request, in domain.Credentials) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// swagger:route POST /session/register Session sessionRegister
// @Summary Create an account, does not sign in
// @Tags Session
// @Accept json
// @Produce json
// @Param body body domain.Registration true "registration"
// @Success 201 {object} object
// @Failure 409 {object} httpkit.Envelope
// @Router /session/register [post]
func (h *handlers) register(r *http.Request, in domain.Registration) (any, error) {
	out, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /session/logout Session sessionLogout
// @Summary Drop the stored token
// @Tags Session
// @Success 204
// @Router /session/logout [post]
// @Router /session [delete]
func (h *handlers) logout(r *http.Request) (any, error) {
	if err := h.svc.Logout(r.Context()); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
