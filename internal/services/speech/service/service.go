// Package service proxies text-to-speech requests to the upstream
package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"dashboard/internal/adapters/upstream"
	perr "dashboard/internal/platform/errors"
	pstrings "dashboard/internal/platform/strings"
	"dashboard/internal/services/speech/domain"
)

const referer = "http://translate.google.com/"

// Service implements domain.SpeakerPort
type Service struct {
	client *upstream.Client
	cfg    domain.Config
}

// New constructs the speech service over client
func New(cfg domain.Config, client *upstream.Client) *Service {
	cfg.URL = pstrings.Or(cfg.URL, domain.DefaultURL)
	cfg.Lang = pstrings.Or(cfg.Lang, "fi")
	cfg.DefaultText = pstrings.Or(cfg.DefaultText, domain.DefaultText)
	return &Service{client: client, cfg: cfg}
}

// URL builds the upstream request URL for text
func (s *Service) URL(text string) string {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", text)
	q.Set("tl", s.cfg.Lang)
	q.Set("client", "tw-ob")
	sep := "?"
	if strings.Contains(s.cfg.URL, "?") {
		sep = "&"
	}
	return s.cfg.URL + sep + q.Encode()
}

// Speak implements domain.SpeakerPort; blank text falls back to the default
func (s *Service) Speak(ctx context.Context, text string) (*domain.Audio, error) {
	text = pstrings.Or(strings.TrimSpace(text), s.cfg.DefaultText)
	if utf8.RuneCountInString(text) > domain.MaxText {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "text must be at most %d characters", domain.MaxText), "text")
	}

	resp, err := s.client.Get(ctx, s.URL(text), http.Header{"Referer": {referer}})
	if err != nil {
		return nil, err
	}
	return &domain.Audio{Body: resp.Body, ContentType: "audio/mpeg"}, nil
}
