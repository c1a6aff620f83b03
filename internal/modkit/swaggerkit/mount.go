// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "dashboard/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the Swagger UI and JSON spec under r at /docs if enabled.
// apiBase is the public path r is served at, e.g. "/dashboard/api"
func Mount(r phttp.Router, apiBase string, enabled bool) {
	if !enabled {
		return
	}
	docs := apiBase + "/docs"
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docs+"/", http.StatusPermanentRedirect)
	})
	r.Get("/docs/doc.json", serveDocJSON(apiBase))
	r.Handle("/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("dashboard"),
		httpSwagger.URL(docs+"/doc.json"),
	))
}
