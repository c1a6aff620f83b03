package module

import (
	"time"

	"dashboard/internal/platform/config"
	"dashboard/internal/services/speech/domain"
)

// FromConfig reads TTS_* keys under cfg
func FromConfig(cfg config.Conf) domain.Config {
	c := cfg.Prefix("TTS_")
	return domain.Config{
		URL:         c.MayURL("URL", domain.DefaultURL),
		Lang:        c.MayString("LANG", "fi"),
		DefaultText: c.MayString("DEFAULT_TEXT", domain.DefaultText),
		Timeout:     c.MayDuration("TIMEOUT", 15*time.Second),
	}
}
