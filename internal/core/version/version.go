// Package version provides information about the build version of the service.
package version

import "runtime"

// Service is the name reported by the API
const Service = "dashboard-api"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'dashboard/internal/core/version.version=v0.1.0'
	// -X 'dashboard/internal/core/version.commit=abcd' -X 'dashboard/internal/core/version.date=2025-06-01'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
