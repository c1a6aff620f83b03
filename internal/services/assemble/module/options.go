// Package module reads the assembly settings; assembly has no HTTP surface
package module

import (
	"dashboard/internal/platform/config"
	"dashboard/internal/services/assemble/service"
	gensvc "dashboard/internal/services/generate/service"
)

// FromConfig reads ASSEMBLE_* keys under cfg. The data file defaults to the
// generator's output and the public dir to the one the API serves
func FromConfig(cfg config.Conf) service.Options {
	c := cfg.Prefix("ASSEMBLE_")
	return service.Options{
		PublicDir: c.MayString("PUBLIC_DIR", cfg.MayString("PUBLIC_DIR", "public")),
		DataFile:  c.MayString("DATA_FILE", cfg.MayString("GENERATE_OUT", gensvc.DefaultOut)),
		Out:       c.MayString("OUT", service.OutFile),
	}
}
