package quiethours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a user-configured daily time range during which non-urgent
// notifications are deferred. Start and End are wall-clock times in
// "HH:MM" form; a Start later than End means the window spans midnight.
type Window struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Contains reports whether the given instant falls inside the window.
// A disabled or malformed window contains nothing.
func (w Window) Contains(now time.Time) bool {
	if !w.Enabled {
		return false
	}

	start, err := parseClock(w.Start)
	if err != nil {
		return false
	}
	end, err := parseClock(w.End)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()

	if start > end {
		// Window spans midnight, e.g. 22:00-08:00.
		return minute >= start || minute < end
	}
	return minute >= start && minute < end
}

// NextEnd reports when the current quiet period ends. The second return
// value is false when now is outside the window (or the window is
// disabled or malformed), in which case no wake timer is needed.
func (w Window) NextEnd(now time.Time) (time.Time, bool) {
	if !w.Contains(now) {
		return time.Time{}, false
	}

	end, err := parseClock(w.End)
	if err != nil {
		return time.Time{}, false
	}

	endToday := time.Date(now.Year(), now.Month(), now.Day(), end/60, end%60, 0, 0, now.Location())
	if !endToday.After(now) {
		// Window spans midnight and we are before it: the end is tomorrow.
		endToday = endToday.Add(24 * time.Hour)
	}
	return endToday, true
}

// Validate checks that both clock values parse.
func (w Window) Validate() error {
	if _, err := parseClock(w.Start); err != nil {
		return fmt.Errorf("quiet hours start: %w", err)
	}
	if _, err := parseClock(w.End); err != nil {
		return fmt.Errorf("quiet hours end: %w", err)
	}
	return nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}
