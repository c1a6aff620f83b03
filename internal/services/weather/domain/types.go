// Package domain defines the weather pass-through ports
package domain

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultURL is the road weather station the dashboard shows
const DefaultURL = "https://tie.digitraffic.fi/api/weather/v1/stations/1087/data"

// Config points at the upstream station feed
type Config struct {
	URL     string
	Timeout time.Duration
}

// ReaderPort returns the current station data as the upstream wrote it
type ReaderPort interface {
	Current(ctx context.Context) (json.RawMessage, error)
}
