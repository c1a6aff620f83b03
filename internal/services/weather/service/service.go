// Package service fetches station data from the weather upstream
package service

import (
	"context"
	"encoding/json"
	"io"

	"dashboard/internal/adapters/upstream"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/services/weather/domain"
)

// maxBody caps what we read from the upstream
const maxBody = 4 << 20

// Service implements domain.ReaderPort
type Service struct {
	client *upstream.Client
	url    string
}

// New constructs the weather service over client
func New(cfg domain.Config, client *upstream.Client) *Service {
	if cfg.URL == "" {
		cfg.URL = domain.DefaultURL
	}
	return &Service{client: client, url: cfg.URL}
}

// Current implements domain.ReaderPort
// The net/http transport asks for gzip and inflates it, so the body is plain JSON
func (s *Service) Current(ctx context.Context) (json.RawMessage, error) {
	resp, err := s.client.Get(ctx, s.url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, perr.FromTransport(err, "weather read body")
	}
	if len(b) > maxBody {
		return nil, perr.Upstreamf("weather body exceeds %d bytes", maxBody)
	}
	if !json.Valid(b) {
		return nil, perr.Upstreamf("weather body is not JSON")
	}
	return json.RawMessage(b), nil
}
