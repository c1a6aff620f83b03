// Command dashboard-assemble builds dashboard.html with styles, script and
// calendar data inlined
package main

import (
	"context"
	"flag"

	"dashboard/internal/platform/config"
	"dashboard/internal/platform/logger"

	asmmod "dashboard/internal/services/assemble/module"
	asmsvc "dashboard/internal/services/assemble/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	defaults := asmmod.FromConfig(config.New().Prefix("DASH_"))
	public := flag.String("public", defaults.PublicDir, "directory with index.html, style.css and app_static.js")
	data := flag.String("data", defaults.DataFile, "generated static data file")
	out := flag.String("out", defaults.Out, "output file")
	flag.Parse()

	l := logger.Get()
	a := asmsvc.New(asmsvc.Options{PublicDir: *public, DataFile: *data, Out: *out})
	if _, err := a.Run(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("assembly failed")
	}
}
