package connectivity

import "errors"

// ErrProbeURLEmpty is returned when the prober is configured without a URL.
var ErrProbeURLEmpty = errors.New("probe URL cannot be empty")
