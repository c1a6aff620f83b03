package module

import (
	"dashboard/internal/platform/config"
	"dashboard/internal/services/generate/service"
)

// Options holds the GENERATE_* settings
type Options struct {
	// Schedule is a cron spec; empty disables in-process generation
	Schedule string
	Out      string
}

// FromConfig reads GENERATE_* keys under cfg
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("GENERATE_")
	return Options{
		Schedule: c.MayString("SCHEDULE", ""),
		Out:      c.MayString("OUT", service.DefaultOut),
	}
}
