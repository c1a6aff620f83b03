package service

import (
	"context"
	"time"

	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct{ log *logger.Logger }

func (l cronLogger) Info(msg string, kv ...any) {
	l.log.Debug().Fields(kv).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, kv ...any) {
	l.log.Error().Err(err).Fields(kv).Msg(msg)
}

// Parse validates a standard five field cron spec (or a descriptor like @daily)
func Parse(spec string) (cron.Schedule, error) {
	s, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeValidation, "bad schedule %q", spec), "schedule")
	}
	return s, nil
}

// Schedule runs g once right away, then on spec until ctx is done
// Runs never overlap: a tick that arrives while a run is busy is skipped
// Failed runs are logged and do not stop the schedule
func (g *Generator) Schedule(ctx context.Context, spec string) error {
	sched, err := Parse(spec)
	if err != nil {
		return err
	}

	log := logger.C(ctx).With().Str("component", "generate").Str("schedule", spec).Logger()
	cl := cronLogger{log: &log}
	run := func() {
		if _, err := g.Run(ctx); err != nil {
			log.Error().Err(err).Msg("static data generation failed")
		}
	}

	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	c.Schedule(sched, cron.FuncJob(run))

	cron.NewChain(cron.Recover(cl)).Then(cron.FuncJob(run)).Run()
	c.Start()
	log.Info().Time("next", sched.Next(time.Now())).Msg("generation scheduled")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("generation schedule stopped")
	return nil
}
