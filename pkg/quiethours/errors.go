package quiethours

import "errors"

// ErrInvalidClock is returned when a clock value is not in "HH:MM" form.
var ErrInvalidClock = errors.New("invalid clock value, expected HH:MM")
