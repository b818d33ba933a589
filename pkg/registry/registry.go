package registry

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Registry maps notification types and priority levels to their display
// and delivery defaults. A Registry is immutable after construction;
// build override sets up front and pass them to New.
type Registry struct {
	types      map[Type]TypeProfile
	priorities map[Priority]PriorityProfile
}

// Option configures a Registry.
type Option func(*Registry) error

// WithTypeProfile replaces the profile registered for a type.
func WithTypeProfile(t Type, profile TypeProfile) Option {
	return func(r *Registry) error {
		if !profile.Priority.Valid() {
			return fmt.Errorf("%w: type %q has invalid priority %d", ErrInvalidOverride, t, profile.Priority)
		}
		r.types[t] = profile
		return nil
	}
}

// WithTypePriority overrides only the default priority of a type,
// keeping the remaining profile fields intact.
func WithTypePriority(t Type, p Priority) Option {
	return func(r *Registry) error {
		if !p.Valid() {
			return fmt.Errorf("%w: invalid priority %d for type %q", ErrInvalidOverride, p, t)
		}
		profile, ok := r.types[t]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
		profile.Priority = p
		r.types[t] = profile
		return nil
	}
}

// WithOverrideYAML applies an override document, typically loaded from a
// deployment config file. Unknown types in the document are rejected so
// typos surface at startup instead of silently falling through to defaults.
func WithOverrideYAML(doc []byte) Option {
	return func(r *Registry) error {
		var overrides overrideDoc
		if err := yaml.Unmarshal(doc, &overrides); err != nil {
			return errors.Join(ErrInvalidOverride, err)
		}
		return overrides.apply(r)
	}
}

// New creates a Registry populated with the built-in defaults,
// then applies the given overrides in order.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		types:      defaultTypeProfiles(),
		priorities: defaultPriorityProfiles(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Type returns the profile for a notification type. Unregistered types
// fall back to the system update profile so callers never dereference
// a zero profile.
func (r *Registry) Type(t Type) TypeProfile {
	if profile, ok := r.types[t]; ok {
		return profile
	}
	return r.types[TypeSystemUpdate]
}

// Known reports whether the type is registered.
func (r *Registry) Known(t Type) bool {
	_, ok := r.types[t]
	return ok
}

// Priority returns the display profile for a priority level. Out-of-range
// values fall back to the medium profile.
func (r *Registry) Priority(p Priority) PriorityProfile {
	if profile, ok := r.priorities[p]; ok {
		return profile
	}
	return r.priorities[PriorityMedium]
}

// Types returns all registered notification types.
func (r *Registry) Types() []Type {
	types := make([]Type, 0, len(r.types))
	for t := range r.types {
		types = append(types, t)
	}
	return types
}

type overrideDoc struct {
	Types      map[string]typeOverride    `yaml:"types"`
	Priorities map[string]PriorityProfile `yaml:"priorities"`
}

type typeOverride struct {
	Priority      string `yaml:"priority"`
	Icon          string `yaml:"icon"`
	URL           string `yaml:"url"`
	FastAggregate *bool  `yaml:"fast_aggregate"`
}

func (d overrideDoc) apply(r *Registry) error {
	for name, o := range d.Types {
		t := Type(name)
		profile, ok := r.types[t]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		if o.Priority != "" {
			p, err := ParsePriority(o.Priority)
			if err != nil {
				return err
			}
			profile.Priority = p
		}
		if o.Icon != "" {
			profile.Icon = o.Icon
		}
		if o.URL != "" {
			profile.URL = o.URL
		}
		if o.FastAggregate != nil {
			profile.FastAggregate = *o.FastAggregate
		}
		r.types[t] = profile
	}

	for name, profile := range d.Priorities {
		p, err := ParsePriority(name)
		if err != nil {
			return err
		}
		current := r.priorities[p]
		if profile.Color != "" {
			current.Color = profile.Color
		}
		if profile.Sound != "" {
			current.Sound = profile.Sound
		}
		if len(profile.Vibration) > 0 {
			current.Vibration = profile.Vibration
		}
		r.priorities[p] = current
	}

	return nil
}
