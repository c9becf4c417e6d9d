// Package modkit provides module wiring and core deps
package modkit

import (
	"dataproc/internal/adapters/bfhl"
	"dataproc/internal/modkit/module"
	"dataproc/internal/platform/config"
	"dataproc/internal/platform/logger"
)

// Module is the surface console modules implement
type Module = module.Module

// Deps holds core dependencies passed to modules
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Remote *bfhl.Client
}

// Logger returns Log or the process root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// MustRemote returns the remote client or panics with the module name
func (d Deps) MustRemote(module string) *bfhl.Client {
	if d.Remote == nil {
		panic("modkit: " + module + " requires a remote client")
	}
	return d.Remote
}
