package modkit

import (
	"net/http"
	"strings"
)

// Option adjusts how a module is built
type Option func(*Built)

// Built is what a module constructor reads after options are applied
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports carries the module's cross-module inputs, see WithPorts
	Ports any
}

// WithName names the module for logs and the ports registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = strings.TrimSpace(name) }
}

// WithPrefix sets the path the module mounts under, relative to /api/v1
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per-module middleware; it runs after the API stack
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts passes a module its inputs. The concrete type belongs to the
// receiving module, which type-asserts Built.Ports.
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// Build applies opts in order; later options win. The prefix comes back with
// one leading slash and no trailing slash. nil options are skipped.
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	prefix := strings.TrimRight(strings.TrimSpace(b.Prefix), "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	b.Prefix = prefix
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}
