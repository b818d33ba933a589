package notifier

import "time"

// Config holds the tunables of the delivery engine.
type Config struct {
	// BatchDelay is the debounce window for aggregating batchable
	// notifications of the same type and priority.
	BatchDelay time.Duration `env:"NOTIFY_BATCH_DELAY" envDefault:"5s"`

	// FastBatchDelay replaces BatchDelay for types flagged for fast
	// aggregation in the registry.
	FastBatchDelay time.Duration `env:"NOTIFY_FAST_BATCH_DELAY" envDefault:"2s"`

	// MaxRetries bounds the display attempts made after a transient
	// platform failure.
	MaxRetries int `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`

	// RetryBaseDelay is the first backoff delay; each subsequent
	// attempt doubles it.
	RetryBaseDelay time.Duration `env:"NOTIFY_RETRY_BASE_DELAY" envDefault:"1s"`

	// CleanupInterval is how often retry records and failed entries
	// are pruned.
	CleanupInterval time.Duration `env:"NOTIFY_CLEANUP_INTERVAL" envDefault:"5m"`

	// RetentionPeriod bounds the age of retry records and failed
	// entries kept for diagnostics.
	RetentionPeriod time.Duration `env:"NOTIFY_RETENTION_PERIOD" envDefault:"24h"`

	// EventBuffer is the per-subscriber buffer of the click and action
	// event streams.
	EventBuffer int `env:"NOTIFY_EVENT_BUFFER" envDefault:"16"`
}

// DefaultConfig returns the engine defaults used when no configuration
// is supplied.
func DefaultConfig() Config {
	return Config{
		BatchDelay:      5 * time.Second,
		FastBatchDelay:  2 * time.Second,
		MaxRetries:      3,
		RetryBaseDelay:  time.Second,
		CleanupInterval: 5 * time.Minute,
		RetentionPeriod: 24 * time.Hour,
		EventBuffer:     16,
	}
}

// sanitize fills zero values with defaults so a partially populated
// Config cannot disable timers outright.
func (c Config) sanitize() Config {
	def := DefaultConfig()
	if c.BatchDelay <= 0 {
		c.BatchDelay = def.BatchDelay
	}
	if c.FastBatchDelay <= 0 {
		c.FastBatchDelay = def.FastBatchDelay
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = def.MaxRetries
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = def.RetryBaseDelay
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = def.CleanupInterval
	}
	if c.RetentionPeriod <= 0 {
		c.RetentionPeriod = def.RetentionPeriod
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = def.EventBuffer
	}
	return c
}
