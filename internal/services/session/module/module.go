// Package module wires the session service into the console API
package module

import (
	"context"
	"encoding/json"
	"net/http"

	"dataproc/internal/adapters/bfhl"
	modkit "dataproc/internal/modkit"
	"dataproc/internal/modkit/httpkit"
	str "dataproc/internal/platform/strings"

	"dataproc/internal/services/session/domain"
	sessionhttp "dataproc/internal/services/session/http"
	"dataproc/internal/services/session/service"
	"dataproc/internal/services/session/store"
)

// TokenSource hands out the current bearer token
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Ports is what the session module exports to other modules
type Ports struct {
	Tokens TokenSource
}

// Options lets callers swap the store; the console default is in memory
type Options struct {
	Store domain.Store
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the session module. Extra options may carry Options via modkit.WithPorts.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("session"),
		modkit.WithPrefix("/session"),
	}, opts...)...)

	var st domain.Store = store.NewMemory()
	if o, ok := b.Ports.(Options); ok && o.Store != nil {
		st = o.Store
	}

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    service.New(RemoteAuth{Client: deps.MustRemote("session")}, st, nil),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		sessionhttp.Register(rr, m.svc)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "session") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Tokens: m.svc} }

// RemoteAuth adapts the bfhl client to domain.Authenticator
type RemoteAuth struct {
	Client *bfhl.Client
}

// Login implements domain.Authenticator
func (a RemoteAuth) Login(ctx context.Context, c domain.Credentials) (string, error) {
	return a.Client.Login(ctx, bfhl.Credentials{Email: c.Email, Password: c.Password})
}

// Register implements domain.Authenticator
func (a RemoteAuth) Register(ctx context.Context, r domain.Registration) (json.RawMessage, error) {
	return a.Client.Register(ctx, bfhl.Registration{
		Email:      r.Email,
		Password:   r.Password,
		FullName:   r.FullName,
		RollNumber: r.RollNumber,
	})
}
