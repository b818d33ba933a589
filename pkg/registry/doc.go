// Package registry holds the static configuration mapping notification
// types to their default priority, icon, target URL, and aggregation
// copy, and priority levels to their display profile (color, sound,
// vibration pattern).
//
// The registry is pure data with no behavior beyond lookup and override
// application. It is constructed once at startup and shared read-only
// by the delivery engine.
//
// # Usage
//
//	reg, err := registry.New()
//	if err != nil {
//	    // handle error
//	}
//	profile := reg.Type(registry.TypeTaskAssigned)
//
// Deployment-specific overrides can be applied from a YAML document:
//
//	reg, err := registry.New(registry.WithOverrideYAML(doc))
//
// Priorities form a closed enum (Low < Medium < High < Critical) and
// are compared by discriminant only. Only High and Critical bypass
// quiet hours and batching.
package registry
