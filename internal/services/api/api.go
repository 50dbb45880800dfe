// Package api provides the HTTP API for the application
package api

import (
	"hirehub/internal/platform/config"
	"hirehub/internal/platform/logger"
	phttp "hirehub/internal/platform/net/http"
	"hirehub/internal/platform/store"

	"hirehub/internal/modkit"
	"hirehub/internal/modkit/httpkit"
	"hirehub/internal/modkit/module"
	"hirehub/internal/modkit/swaggerkit"

	insightsmod "hirehub/internal/services/insights/module"
	listingsmod "hirehub/internal/services/listings/module"
	webboardmod "hirehub/internal/services/webboard/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct insights first and extract its Recorder port, then inject it
	// into listings together with the bearer auth port
	insights := insightsmod.New(deps)
	rec := module.MustPortsOf[insightsmod.Ports](insights).Recorder

	listings := listingsmod.New(
		deps,
		modkit.WithPorts(listingsmod.Ports{
			Auth:     httpkit.NewPortFunc(TokenParser(opt.Config)),
			Recorder: rec,
		}),
	)

	mods := []module.Module{
		listings,
		webboardmod.New(deps),
		insights,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
