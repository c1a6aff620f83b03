// Package module wires scheduled static data generation as a modkit.Module
package module

import (
	"context"

	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	"dashboard/internal/platform/logger"
	caldom "dashboard/internal/services/calendar/domain"
	"dashboard/internal/services/generate/service"
)

// RunnerPort writes the static data file once
type RunnerPort interface {
	Run(ctx context.Context) (service.Result, error)
}

// Ports exported by the generate module
type Ports struct {
	Runner RunnerPort
}

// Module implements modkit.Module; it has no HTTP routes
type Module struct {
	opts Options
	gen  *service.Generator
}

// New constructs the module over the calendar builder port
func New(_ modkit.Deps, builder caldom.BuilderPort, opts Options) *Module {
	return &Module{opts: opts, gen: service.New(builder, opts.Out)}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "generate" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return Ports{Runner: m.gen} }

// MountRoutes is a no-op
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Start launches the schedule in the background when one is configured and
// reports whether it did. The schedule stops with ctx
func (m *Module) Start(ctx context.Context) bool {
	if m.opts.Schedule == "" {
		return false
	}
	if _, err := service.Parse(m.opts.Schedule); err != nil {
		logger.C(ctx).Error().Err(err).Msg("generation schedule disabled")
		return false
	}
	go func() {
		_ = m.gen.Schedule(logger.WithJob(ctx, "generate"), m.opts.Schedule)
	}()
	return true
}
