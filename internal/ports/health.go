package ports

import "context"

// HealthChecker is a dependency the readiness probe waits on: the SQLite
// store always, the identity service in remote identity mode.
type HealthChecker interface {
	// Name keys the checker in the readiness body ("sqlite", "identity-api").
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns each error by name; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
