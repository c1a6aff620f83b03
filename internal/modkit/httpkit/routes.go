package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts the JSON API under <r>/api, so a router already scoped to
// the secret path serves <secret>/api/...
//
// example:
//
//	httpkit.MountAPI(secret, nil, func(api httpkit.Router) {
//	  calendar.MountRoutes(api)
//	})
func MountAPI(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api", mw, mount)
}
