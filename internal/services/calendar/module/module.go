// Package module wires the calendar aggregator into the API
package module

import (
	"net/http"

	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	"dashboard/internal/services/calendar/domain"
	calhttp "dashboard/internal/services/calendar/http"
	"dashboard/internal/services/calendar/service"
)

// Ports exposed by the calendar module
type Ports struct {
	Builder domain.BuilderPort
	Lookup  domain.LookupPort
}

// Module implements modkit.Module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
	ports  Ports
}

// New constructs the calendar module, usually with cfg from FromConfig(deps.Cfg)
func New(deps modkit.Deps, cfg domain.Config, opts ...modkit.Option) *Module {
	b := modkit.Build(modkit.Built{Name: "calendar", Prefix: "/calendar-info"}, opts...)
	svc := service.New(cfg, deps.Clock)

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		ports:  Ports{Builder: svc, Lookup: svc},
	}
}

// Service returns the aggregator for in-process callers
func (m *Module) Service() *service.Service { return m.svc }

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		calhttp.Register(rr, m.svc)
	})
}
