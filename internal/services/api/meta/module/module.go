// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	"dashboard/internal/core/version"
	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	metahttp "dashboard/internal/services/api/meta/http"

	"github.com/google/uuid"
)

// Ports exposed by the meta module
type Ports struct {
	InstanceID string
}

// newInstanceID is swapped in tests
var newInstanceID = uuid.NewString

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	deps   metahttp.Deps
}

// New constructs a meta module; each process gets a fresh instance id
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(modkit.Built{Name: "meta", Prefix: "/meta"}, opts...)

	started := deps.StartedAt
	if started.IsZero() {
		started = deps.Now()
	}
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			InstanceID:  newInstanceID(),
			StartedAt:   started,
			Now:         deps.Now,
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{InstanceID: m.deps.InstanceID} }
