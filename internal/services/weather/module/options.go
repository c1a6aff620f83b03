package module

import (
	"time"

	"dashboard/internal/platform/config"
	"dashboard/internal/services/weather/domain"
)

// FromConfig reads WEATHER_* keys under cfg
func FromConfig(cfg config.Conf) domain.Config {
	c := cfg.Prefix("WEATHER_")
	return domain.Config{
		URL:     c.MayURL("URL", domain.DefaultURL),
		Timeout: c.MayDuration("TIMEOUT", 10*time.Second),
	}
}
