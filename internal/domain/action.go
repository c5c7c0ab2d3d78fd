package domain

import "context"

// Action represents a single executable operation with rollback capability.
//
// Action is defined in the domain layer so that consumers of the pipeline can
// describe compensating steps without depending on the application layer.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil. The context may
	// differ from the one passed to Execute.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "move lead 42 to column 7").
	Description() string
}
