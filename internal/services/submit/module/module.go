// Package module wires the submission pipeline into the console API
package module

import (
	"net/http"

	modkit "dataproc/internal/modkit"
	"dataproc/internal/modkit/httpkit"
	"dataproc/internal/platform/net/middleware"
	str "dataproc/internal/platform/strings"

	"dataproc/internal/services/submit/domain"
	submithttp "dataproc/internal/services/submit/http"
	"dataproc/internal/services/submit/service"
)

// Options are the cross module inputs, passed with modkit.WithPorts
type Options struct {
	Tokens   domain.TokenSource
	Notifier domain.Notifier
	Policy   domain.DisplayPolicy
	// MaxUpload caps a submission request in bytes, 0 means 32MB
	MaxUpload int64
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
	opts   Options
}

// New constructs the submissions module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("submissions"),
		modkit.WithPrefix("/submissions"),
	}, opts...)...)

	o, _ := b.Ports.(Options)
	if o.MaxUpload <= 0 {
		o.MaxUpload = 32 << 20
	}
	var d domain.Dispatcher = deps.MustRemote("submissions")

	log := deps.Logger()
	svc := service.New(d, o.Notifier, service.Options{
		Policy: o.Policy,
		OnTransition: func(tr domain.Transition) {
			log.Debug().Str("submission_id", tr.SubmissionID).
				Str("from", tr.From.String()).Str("to", tr.To.String()).Msg("submission state")
		},
	})

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    append([]func(http.Handler) http.Handler{middleware.MaxBody(o.MaxUpload)}, b.Mw...),
		svc:    svc,
		opts:   o,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		submithttp.Register(rr, submithttp.Deps{Service: m.svc, Tokens: m.opts.Tokens, MaxBody: m.opts.MaxUpload})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "submissions") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
