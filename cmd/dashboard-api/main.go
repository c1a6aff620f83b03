// Command dashboard-api serves the dashboard frontend and its JSON API
// under the secret path
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dashboard/internal/platform/config"
	"dashboard/internal/platform/logger"
	phttp "dashboard/internal/platform/net/http"

	"dashboard/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env wins over file values
	envErr := godotenv.Load()

	// service-scoped config for HTTP etc (DASH_*)
	cfg := config.New().Prefix("DASH_")

	// bring up logging after .env so LOG_* from the file apply
	l := logger.Get()
	if envErr != nil && !os.IsNotExist(envErr) {
		l.Warn().Err(envErr).Msg(".env not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads DASH_PORT)
	srv := phttp.NewServer(cfg)

	opts := api.OptionsFromConfig(cfg)
	opts.Logger = l
	mounted := api.Mount(srv.Router(), opts)

	if mounted.Generate.Start(ctx) {
		l.Info().Msg("static data generation scheduled")
	}

	l.Info().Str("addr", srv.Addr()).Str("secret_path", mounted.SecretPath).Msg("dashboard listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
