package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// PermissionOptions customize the permission request flow.
type PermissionOptions struct {
	// Consent, when set, is asked before the platform prompt is shown.
	// Returning false skips the prompt entirely, leaving permission
	// undecided so the user can be asked again later.
	Consent func(ctx context.Context) bool

	// OnDenied, when set, runs after the user refuses the platform prompt.
	OnDenied func()
}

// RequestPermission drives the platform permission prompt. Permission
// already granted short-circuits; a fresh grant is confirmed with a
// welcome notification delivered outside the batching path.
func (e *Engine) RequestPermission(ctx context.Context, opts PermissionOptions) (sink.Permission, error) {
	if e.isClosed() {
		return e.sink.Permission(), ErrEngineClosed
	}

	current := e.sink.Permission()
	if current == sink.PermissionGranted {
		return current, nil
	}

	if opts.Consent != nil && !opts.Consent(ctx) {
		e.logger.DebugContext(ctx, "notification permission prompt declined before platform ask")
		return current, nil
	}

	perm, err := e.sink.RequestPermission(ctx)
	if err != nil {
		return current, fmt.Errorf("failed to request notification permission: %w", err)
	}

	e.logger.LogAttrs(ctx, slog.LevelInfo, "notification permission resolved",
		slog.String("permission", string(perm)))

	switch perm {
	case sink.PermissionGranted:
		n := e.build(Request{
			Title:    "Notifications Enabled",
			Message:  "You'll now receive updates about tasks, deadlines, and more.",
			Type:     registry.TypeSystemSuccess,
			Priority: registry.PriorityLow,
		})
		e.showImmediate(ctx, n)
	case sink.PermissionDenied:
		if opts.OnDenied != nil {
			opts.OnDenied()
		}
	}

	return perm, nil
}
