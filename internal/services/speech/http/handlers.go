// Package http provides the speech endpoint
package http

import (
	"io"
	stdhttp "net/http"

	"dashboard/internal/modkit/httpkit"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"
	"dashboard/internal/services/speech/domain"
)

// Register mounts the speech endpoint
func Register(r httpkit.Router, s domain.SpeakerPort) {
	h := &handlers{svc: s}
	r.Get("/", h.speak)
}

type handlers struct{ svc domain.SpeakerPort }

// swagger:route GET /speak Speech speechSpeak
// @Summary Text to speech audio
// @Tags Speech
// @Produce audio/mpeg
// @Param text query string false "text to speak, at most 200 characters"
// @Success 200 {file} binary "mp3 stream"
// @Router /speak [get]
func (h *handlers) speak(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.Bind[domain.SpeakInput](r)
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}

	audio, err := h.svc.Speak(r.Context(), in.Text)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeValidation) {
			httpkit.WriteError(w, r, err)
			return
		}
		logger.C(r.Context()).Error().Err(err).Msg("tts upstream failed")
		httpkit.WriteError(w, r, perr.New(perr.ErrorCodeUnknown, "TTS failed"))
		return
	}
	defer audio.Body.Close()

	w.Header().Set("Content-Type", audio.ContentType)
	n, err := io.Copy(w, audio.Body)
	if err != nil {
		// headers are gone, the client sees a truncated stream
		logger.C(r.Context()).Warn().Err(err).Int64("bytes", n).Msg("tts stream interrupted")
	}
}
