// Package module wires the notification feed into the console API
package module

import (
	"net/http"

	modkit "dataproc/internal/modkit"
	"dataproc/internal/modkit/httpkit"
	str "dataproc/internal/platform/strings"

	notifyhttp "dataproc/internal/services/notify/http"
	"dataproc/internal/services/notify/service"
)

// Ports is what the notify module exports
type Ports struct {
	Notifier *service.Service
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the notifications module. The feed size comes from NOTIFY_KEEP.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("notifications"),
		modkit.WithPrefix("/notifications"),
	}, opts...)...)

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    service.New(deps.Cfg.MayInt("NOTIFY_KEEP", 50)),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		notifyhttp.Register(rr, m.svc)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "notifications") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Notifier: m.svc} }
