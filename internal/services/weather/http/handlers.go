// Package http provides the weather endpoint
package http

import (
	stdhttp "net/http"

	"dashboard/internal/modkit/httpkit"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"
	"dashboard/internal/services/weather/domain"
)

// Register mounts the weather endpoint
func Register(r httpkit.Router, s domain.ReaderPort) {
	h := &handlers{svc: s}
	httpkit.GetRaw(r, "/", h.current)
}

type handlers struct{ svc domain.ReaderPort }

// swagger:route GET /weather Weather weatherCurrent
// @Summary Current road weather station data, passed through unchanged
// @Tags Weather
// @Produce json
// @Success 200 {object} object "upstream payload"
// @Router /weather [get]
func (h *handlers) current(r *stdhttp.Request) (any, error) {
	data, err := h.svc.Current(r.Context())
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("weather fetch failed")
		return nil, perr.New(perr.ErrorCodeUnknown, "failed to fetch weather data")
	}
	return data, nil
}
