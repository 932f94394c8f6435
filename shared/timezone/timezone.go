package timezone

import (
	"hotel/config"
	"hotel/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
	mu          sync.RWMutex
)

func init() {
	Init(config.Get())
}

// Init loads the application location from APP_TIMEZONE, falling back to UTC.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == constant.Empty {
		log.Debug().Msg("No timezone configured, using UTC as default")
		setLocation(time.UTC)

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Europe/London', 'UTC', 'America/New_York'")
		setLocation(time.UTC)

		return
	}

	setLocation(loc)
	log.Debug().Str("timezone", name).Msg("Application timezone initialized")
}

func setLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return Parse(constant.DateFormat, value)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// FormatDate formats the calendar date of t in the application timezone.
func FormatDate(t time.Time) string {
	return Format(t, constant.DateFormat)
}
