// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"dashboard/internal/platform/config"
	"dashboard/internal/platform/logger"
	phttp "dashboard/internal/platform/net/http"
	str "dashboard/internal/platform/strings"
	ptime "dashboard/internal/platform/time"

	"dashboard/internal/modkit"
	"dashboard/internal/modkit/httpkit"
	"dashboard/internal/modkit/module"
	"dashboard/internal/modkit/swaggerkit"

	metamod "dashboard/internal/services/api/meta/module"
	calmod "dashboard/internal/services/calendar/module"
	genmod "dashboard/internal/services/generate/module"
	speechmod "dashboard/internal/services/speech/module"
	weathermod "dashboard/internal/services/weather/module"
)

// Defaults for the top level keys
const (
	DefaultSecretPath = "/dashboard"
	DefaultPublicDir  = "public"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool

	// SecretPath prefixes every served route; empty reads SECRET_PATH
	SecretPath string
	// PublicDir holds the static frontend; empty reads PUBLIC_DIR
	PublicDir   string
	CORSOrigins []string
	// Transport is used for upstream calls; nil means http.DefaultTransport
	Transport http.RoundTripper
}

// OptionsFromConfig fills Options from the top level keys of cfg
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		SecretPath:     cfg.MayString("SECRET_PATH", DefaultSecretPath),
		PublicDir:      cfg.MayString("PUBLIC_DIR", DefaultPublicDir),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// Mounted is what Mount built, for callers that run background work
type Mounted struct {
	SecretPath string
	Calendar   *calmod.Module
	Generate   *genmod.Module
}

// Mount mounts the dashboard onto the given router:
// the static frontend at {secret}/ and the JSON API at {secret}/api
func Mount(r phttp.Router, opt Options) Mounted {
	secret := str.MustPrefix(str.Or(opt.SecretPath, opt.Config.MayString("SECRET_PATH", DefaultSecretPath)))
	public := str.Or(opt.PublicDir, opt.Config.MayString("PUBLIC_DIR", DefaultPublicDir))

	deps := modkit.Deps{
		Log:       opt.Logger,
		Cfg:       opt.Config,
		Clock:     opt.Clock,
		StartedAt: ptime.Or(opt.Clock).Now(),
	}

	calendar := calmod.New(deps, calmod.FromConfig(deps.Cfg))
	mods := []module.Module{
		metamod.New(deps),
		calendar,
		weathermod.New(deps, weathermod.FromConfig(deps.Cfg), opt.Transport),
		speechmod.New(deps, speechmod.FromConfig(deps.Cfg), opt.Transport),
	}
	for _, m := range mods {
		// register each module's ports under its own name (for cross-module lookups)
		module.Register(m.Name(), m.Ports())
	}

	// generation reads the calendar builder through the registry like any other consumer
	builder := module.MustPortsAs[calmod.Ports]("calendar").Builder
	generate := genmod.New(deps, builder, genmod.FromConfig(deps.Cfg))
	module.Register(generate.Name(), generate.Ports())

	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        2 * time.Second,
		Heartbeat:   secret + "/ping",
	})...)

	r.NotFound(notFound)
	r.Get("/", notFound)

	// pprof strips its prefix from the full URL, so it hangs off the root router
	phttp.MountProfiler(r, secret+"/debug", opt.EnableProfiler)

	r.Route(secret, func(sr phttp.Router) {
		httpkit.MountAPI(sr, nil, func(api httpkit.Router) {
			swaggerkit.Mount(api, secret+"/api", opt.EnableSwagger)
			for _, m := range mods {
				m.MountRoutes(api)
			}
		})

		sr.Handle("/*", http.StripPrefix(secret, http.FileServer(http.Dir(public))))
	})

	deps.Logger("api").Info().
		Str("secret_path", secret).
		Str("public_dir", public).
		Int("modules", len(mods)).
		Msg("api mounted")

	return Mounted{SecretPath: secret, Calendar: calendar, Generate: generate}
}

// notFound answers outside the secret path the same way for every route
func notFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
