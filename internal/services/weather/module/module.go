// Package module wires the weather pass-through into the API
package module

import (
	"net/http"

	"dashboard/internal/adapters/upstream"
	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	"dashboard/internal/services/weather/domain"
	weatherhttp "dashboard/internal/services/weather/http"
	"dashboard/internal/services/weather/service"
)

// Ports exposed by the weather module
type Ports struct {
	Reader domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports
}

// New constructs the weather module; transport may be nil
func New(_ modkit.Deps, cfg domain.Config, transport http.RoundTripper, opts ...modkit.Option) *Module {
	b := modkit.Build(modkit.Built{Name: "weather", Prefix: "/weather"}, opts...)
	client := upstream.NewClient(upstream.Options{
		Name:      "weather",
		Timeout:   cfg.Timeout,
		Transport: transport,
	})
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Reader: service.New(cfg, client)},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		weatherhttp.Register(rr, m.ports.Reader)
	})
}
