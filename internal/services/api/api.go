// Package api composes the console modules under /api/v1
package api

import (
	"time"

	"dataproc/internal/adapters/bfhl"
	"dataproc/internal/core/version"
	"dataproc/internal/platform/config"
	"dataproc/internal/platform/logger"
	phttp "dataproc/internal/platform/net/http"

	"dataproc/internal/modkit"
	"dataproc/internal/modkit/httpkit"
	"dataproc/internal/modkit/module"
	"dataproc/internal/modkit/swaggerkit"

	metamod "dataproc/internal/services/meta/module"
	notifymod "dataproc/internal/services/notify/module"
	opcodemod "dataproc/internal/services/opcode/module"
	sessiondomain "dataproc/internal/services/session/domain"
	sessionmod "dataproc/internal/services/session/module"
	submitdomain "dataproc/internal/services/submit/domain"
	submitmod "dataproc/internal/services/submit/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Remote         *bfhl.Client
	Logger         *logger.Logger
	SessionStore   sessiondomain.Store
	Policy         submitdomain.DisplayPolicy
	MaxUpload      int64
	CORSOrigins    []string
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the console API onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Remote: opt.Remote,
	}

	// notify and session go first, submissions and operation-code consume their ports
	notify := notifymod.New(deps)
	session := sessionmod.New(deps, modkit.WithPorts(sessionmod.Options{Store: opt.SessionStore}))
	tokens := module.MustPortsOf[sessionmod.TokenSource](session)

	submit := submitmod.New(deps, modkit.WithPorts(submitmod.Options{
		Tokens:    tokens,
		Notifier:  module.MustPortsOf[submitdomain.Notifier](notify),
		Policy:    opt.Policy,
		MaxUpload: opt.MaxUpload,
	}))
	opcode := opcodemod.New(deps, modkit.WithPorts(opcodemod.Options{Tokens: tokens}))

	mods := []module.Module{
		metamod.New(deps),
		session,
		submit,
		notify,
		opcode,
	}

	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info("dataproc-console").Version
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        5 * time.Second,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
