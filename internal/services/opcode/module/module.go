// Package module wires the operation code lookup into the console API
package module

import (
	"net/http"

	modkit "dataproc/internal/modkit"
	"dataproc/internal/modkit/httpkit"
	str "dataproc/internal/platform/strings"

	opcodehttp "dataproc/internal/services/opcode/http"
)

// Options carries the session token source, passed with modkit.WithPorts
type Options struct {
	Tokens opcodehttp.TokenSource
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	tokens opcodehttp.TokenSource
}

// New constructs the operation code module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("operation-code"),
		modkit.WithPrefix("/operation-code"),
	}, opts...)...)
	o, _ := b.Ports.(Options)
	deps.MustRemote("operation-code")
	return &Module{deps: deps, name: b.Name, prefix: b.Prefix, mws: b.Mw, tokens: o.Tokens}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		opcodehttp.Register(rr, m.deps.Remote, m.tokens)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "operation-code") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
