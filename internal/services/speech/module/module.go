// Package module wires the speech pass-through into the API
package module

import (
	"net/http"

	"dashboard/internal/adapters/upstream"
	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	"dashboard/internal/services/speech/domain"
	speechhttp "dashboard/internal/services/speech/http"
	"dashboard/internal/services/speech/service"
)

// Ports exposed by the speech module
type Ports struct {
	Speaker domain.SpeakerPort
}

// Module implements modkit.Module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports
}

// New constructs the speech module; transport may be nil
func New(_ modkit.Deps, cfg domain.Config, transport http.RoundTripper, opts ...modkit.Option) *Module {
	b := modkit.Build(modkit.Built{Name: "speech", Prefix: "/speak"}, opts...)
	client := upstream.NewClient(upstream.Options{
		Name:      "speech",
		Timeout:   cfg.Timeout,
		Transport: transport,
	})
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Speaker: service.New(cfg, client)},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		speechhttp.Register(rr, m.ports.Speaker)
	})
}
