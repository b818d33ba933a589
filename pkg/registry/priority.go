package registry

import (
	"fmt"
	"strings"
)

// Priority represents the ordinal urgency of a notification.
// It is a closed enum compared by discriminant only; never compare
// priorities through profile values.
type Priority int8

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// Valid checks if the priority is within the closed enum range.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int8(p))
	}
}

// BypassesQuietHours reports whether notifications at this priority are
// delivered immediately regardless of the configured quiet window.
func (p Priority) BypassesQuietHours() bool {
	return p >= PriorityHigh
}

// Batchable reports whether notifications at this priority are eligible
// for time-windowed aggregation.
func (p Priority) Batchable() bool {
	return p <= PriorityMedium
}

// ParsePriority converts a string representation into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium", "normal":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical", "urgent":
		return PriorityCritical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
	}
}

// PriorityProfile carries the display defaults attached to a priority level.
type PriorityProfile struct {
	Color     string `yaml:"color"`
	Sound     string `yaml:"sound"`
	Vibration []int  `yaml:"vibration,flow"`
}

func defaultPriorityProfiles() map[Priority]PriorityProfile {
	return map[Priority]PriorityProfile{
		PriorityLow: {
			Color:     "#6B7280",
			Sound:     "subtle",
			Vibration: []int{100},
		},
		PriorityMedium: {
			Color:     "#3B82F6",
			Sound:     "default",
			Vibration: []int{200, 100, 200},
		},
		PriorityHigh: {
			Color:     "#F59E0B",
			Sound:     "important",
			Vibration: []int{300, 100, 300, 100, 300},
		},
		PriorityCritical: {
			Color:     "#EF4444",
			Sound:     "urgent",
			Vibration: []int{500, 200, 500, 200, 500},
		},
	}
}
