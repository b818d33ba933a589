package settings

import (
	"maps"

	"github.com/dmitrymomot/notifykit/pkg/quiethours"
	"github.com/dmitrymomot/notifykit/pkg/registry"
)

// Settings holds the user-configurable notification preferences.
// The struct is serialized as a flat JSON blob; new fields must be
// added in a superset-compatible way because no schema migration
// logic exists for the persisted documents.
type Settings struct {
	SoundEnabled     bool              `json:"sound_enabled"`
	VibrationEnabled bool              `json:"vibration_enabled"`
	DesktopEnabled   bool              `json:"desktop_enabled"`
	BatchingEnabled  bool              `json:"batching_enabled"`
	QuietHours       quiethours.Window `json:"quiet_hours"`

	// Priority overrides the registry's default priority per type.
	Priority map[registry.Type]registry.Priority `json:"priority,omitempty"`
}

// Defaults returns the settings applied when no persisted document exists.
func Defaults() Settings {
	return Settings{
		SoundEnabled:     true,
		VibrationEnabled: true,
		DesktopEnabled:   true,
		BatchingEnabled:  true,
		QuietHours: quiethours.Window{
			Enabled: false,
			Start:   "22:00",
			End:     "08:00",
		},
	}
}

// Clone returns a deep copy so callers can never mutate the store's
// authoritative state through a returned value.
func (s Settings) Clone() Settings {
	out := s
	if s.Priority != nil {
		out.Priority = maps.Clone(s.Priority)
	}
	return out
}

// PriorityFor resolves the effective priority for a type: the user
// override when one exists and is valid, otherwise the fallback.
func (s Settings) PriorityFor(t registry.Type, fallback registry.Priority) registry.Priority {
	if p, ok := s.Priority[t]; ok && p.Valid() {
		return p
	}
	return fallback
}
