package modkit

import (
	"time"

	"dashboard/internal/platform/config"
	"dashboard/internal/platform/logger"
	ptime "dashboard/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// the zero value is usable: nil Log means the root logger, nil Clock the wall clock
type Deps struct {
	Log       *logger.Logger
	Cfg       config.Conf
	Clock     ptime.Clock
	StartedAt time.Time
}

// Now reads the injected clock
func (d Deps) Now() time.Time { return ptime.Or(d.Clock).Now() }

// Logger returns a component logger derived from Log
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
