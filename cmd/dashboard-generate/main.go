// Command dashboard-generate writes the calendar snapshot for the static
// dashboard, once or on a cron schedule
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dashboard/internal/modkit"
	"dashboard/internal/platform/config"
	"dashboard/internal/platform/logger"

	calmod "dashboard/internal/services/calendar/module"
	genmod "dashboard/internal/services/generate/module"
	gensvc "dashboard/internal/services/generate/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New().Prefix("DASH_")
	defaults := genmod.FromConfig(cfg)

	out := flag.String("out", defaults.Out, "output file")
	schedule := flag.String("schedule", defaults.Schedule, `cron spec, e.g. "0 3 * * *"; empty runs once`)
	dir := flag.String("dir", "", "calendar directory (overrides DASH_CALENDAR_DIR)")
	flag.Parse()

	l := logger.Get()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calCfg := calmod.FromConfig(cfg)
	if *dir != "" {
		calCfg.Dir = *dir
	}
	deps := modkit.Deps{Log: l, Cfg: cfg}
	builder := calmod.New(deps, calCfg).Service()
	gen := gensvc.New(builder, *out)

	if *schedule == "" {
		if _, err := gen.Run(ctx); err != nil {
			l.Fatal().Err(err).Str("dir", calCfg.Dir).Msg("generation failed")
		}
		return
	}

	if err := gen.Schedule(logger.WithJob(ctx, "generate"), *schedule); err != nil {
		l.Fatal().Err(err).Str("schedule", *schedule).Msg("schedule failed")
	}
}
