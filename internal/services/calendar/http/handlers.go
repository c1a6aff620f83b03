// Package http provides the calendar endpoints
package http

import (
	stdhttp "net/http"

	"dashboard/internal/modkit/httpkit"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"
	"dashboard/internal/services/calendar/domain"
)

// Service is what the handlers need from the aggregator
type Service interface {
	domain.BuilderPort
	domain.LookupPort
}

// Register mounts calendar endpoints on the given router
func Register(r httpkit.Router, s Service) {
	h := &handlers{svc: s}

	// whole snapshot, unwrapped, the frontend reads .holidays and .namedays
	httpkit.GetRaw(r, "/", h.snapshot)

	// one date
	httpkit.GetQuery(r, "/{date}", h.day)
}

type handlers struct{ svc Service }

// failed hides build failures behind a generic message; validation errors pass through
func failed(r *stdhttp.Request, err error) error {
	if perr.IsCode(err, perr.ErrorCodeValidation) {
		return err
	}
	logger.C(r.Context()).Error().Err(err).Msg("calendar build failed")
	return perr.New(perr.ErrorCodeUnknown, "failed to fetch calendar info")
}

// swagger:route GET /calendar-info Calendar calendarInfo
// @Summary Holidays and name days for the current window
// @Tags Calendar
// @Produce json
// @Success 200 {object} calendar.Snapshot "ok"
// @Router /calendar-info [get]
func (h *handlers) snapshot(r *stdhttp.Request) (any, error) {
	snap, err := h.svc.Build(r.Context())
	if err != nil {
		return nil, failed(r, err)
	}
	return snap, nil
}

// swagger:route GET /calendar-info/{date} Calendar calendarDay
// @Summary Holidays and name days for one date
// @Tags Calendar
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} calendar.Day "ok"
// @Router /calendar-info/{date} [get]
func (h *handlers) day(r *stdhttp.Request, in domain.DayInput) (any, error) {
	d, err := h.svc.Lookup(r.Context(), in.Date)
	if err != nil {
		return nil, failed(r, err)
	}
	return d, nil
}
