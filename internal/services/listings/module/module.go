// Package module wires listings into the API using modkit
package module

import (
	"net/http"

	modkit "hirehub/internal/modkit"
	"hirehub/internal/modkit/httpkit"
	"hirehub/internal/platform/net/middleware"
	str "hirehub/internal/platform/strings"
	listhttp "hirehub/internal/services/listings/http"
	listrepo "hirehub/internal/services/listings/repo"
	listsvc "hirehub/internal/services/listings/service"
)

// Ports are the cross-module dependencies injected via modkit.WithPorts
// Auth guards /listings/query; a nil port leaves it open (dev only)
// Recorder is the optional insights sink
type Ports struct {
	Auth     middleware.AuthPort
	Recorder listsvc.Recorder
}

// Module implements the listings module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc listsvc.Service
}

// New constructs the listings module
// The public deployment ceiling lives here; the trusted first-paint server
// constructs the service directly with a relaxed Config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("listings"), modkit.WithPrefix("/listings")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	o := FromConfig(deps.Cfg)
	svc := listsvc.New(deps.PG, listrepo.NewPG(), listsvc.Config{
		DefaultPageSize: o.DefaultPageSize,
		MaxPageSize:     o.MaxPageSize,
	}, injected.Recorder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptQueryPort{svc: svc}

	auth := injected.Auth
	external := b.Register
	m.register = func(r httpkit.Router) {
		listhttp.Register(r, m.svc)
		httpkit.Protected(r, auth, func(pr httpkit.Router) {
			listhttp.RegisterProtected(pr, m.svc)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
