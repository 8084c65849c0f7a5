package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a single day's opening window. Open and Close are "HH:MM"
// local times; the window is half-open: [Open, Close).
type Window struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Enabled bool   `json:"enabled"`
}

// Schedule maps lowercase english weekday names ("monday".."sunday") to
// their window.
type Schedule map[string]Window

// Config is the singleton business-hours configuration.
type Config struct {
	Enabled  bool     `json:"enabled"`
	Timezone string   `json:"timezone"`
	Schedule Schedule `json:"schedule"`
}

// DefaultConfig mirrors the seed configuration: weekdays 09-18,
// saturday 09-14, sunday closed.
func DefaultConfig() Config {
	weekday := Window{Open: "09:00", Close: "18:00", Enabled: true}
	return Config{
		Enabled:  true,
		Timezone: "America/Bogota",
		Schedule: Schedule{
			"monday":    weekday,
			"tuesday":   weekday,
			"wednesday": weekday,
			"thursday":  weekday,
			"friday":    weekday,
			"saturday":  {Open: "09:00", Close: "14:00", Enabled: true},
			"sunday":    {Open: "00:00", Close: "00:00", Enabled: false},
		},
	}
}

// Evaluate reports whether now falls inside the configured opening hours.
// A disabled config is always available. Errors are returned so the caller
// can log them, but callers are expected to fail open (available) on error.
func Evaluate(now time.Time, cfg Config) (bool, error) {
	if !cfg.Enabled {
		return true, nil
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return true, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	local := now.In(loc)
	day := strings.ToLower(local.Weekday().String())

	window, ok := cfg.Schedule[day]
	if !ok {
		return true, fmt.Errorf("no schedule entry for %s", day)
	}
	if !window.Enabled {
		return false, nil
	}

	open, err := parseMinutes(window.Open)
	if err != nil {
		return true, fmt.Errorf("invalid open time %q: %w", window.Open, err)
	}
	closeAt, err := parseMinutes(window.Close)
	if err != nil {
		return true, fmt.Errorf("invalid close time %q: %w", window.Close, err)
	}

	minutes := local.Hour()*60 + local.Minute()
	return minutes >= open && minutes < closeAt, nil
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("out of range time %q", s)
	}
	return h*60 + m, nil
}
