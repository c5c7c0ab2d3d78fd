package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// IdentityClient defines the client port for the external session service.
// Implemented by the ACL adapter; called by the principal middleware.
type IdentityClient interface {
	// ResolvePrincipal exchanges the caller's bearer credential for an
	// identity. Returns domain.ErrForbidden when the session is rejected and
	// domain.ErrUnavailable when the service cannot be reached.
	ResolvePrincipal(ctx context.Context, authorization string) (domain.Principal, error)
}
