package module

import (
	"dashboard/internal/platform/config"
	"dashboard/internal/services/calendar/domain"
)

// FromConfig reads CALENDAR_* keys under cfg
func FromConfig(cfg config.Conf) domain.Config {
	c := cfg.Prefix("CALENDAR_")
	return domain.Config{
		Dir:             c.MayString("DIR", "Kalenteritiedot"),
		NamedaysFile:    c.MayString("NAMEDAYS_FILE", "finnish_namedays.json"),
		YearsAhead:      c.MayInt("YEARS_AHEAD", 1),
		BuiltinHolidays: c.MayBool("BUILTIN_HOLIDAYS", false),
	}
}
