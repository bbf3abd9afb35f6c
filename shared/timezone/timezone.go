package timezone

import (
	"fmt"
	"pgsystem/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.RWMutex
	appLocation = time.UTC
)

func init() {
	if err := SetLocation(config.Get().App.Timezone); err != nil {
		log.Error().
			Err(err).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
	}
}

// SetLocation switches the application timezone. An empty name selects UTC.
func SetLocation(name string) error {
	loc := time.UTC

	if name != "" {
		loaded, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("load timezone %q: %w", name, err)
		}

		loc = loaded
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return nil
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
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return t, fmt.Errorf("parse time: %w", err)
	}

	return t, nil
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}

	return ToAppTime(t).Format(layout)
}
