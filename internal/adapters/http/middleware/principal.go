package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

const headerAuthorization = "Authorization"

// PrincipalResolver turns an inbound request into the caller's identity.
type PrincipalResolver interface {
	Resolve(r *http.Request) (domain.Principal, error)
}

// principalKey is the context key for storing the resolved principal.
type principalKey struct{}

// WithPrincipal returns a new context carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the principal stored by the Principal
// middleware. ok is false when none was stored.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Principal returns middleware that resolves the caller identity for every
// request. Requests that cannot be resolved are answered with a problem
// response and never reach the handler. On success the principal is stored
// in the context, added to the request logger and set on the active span.
func Principal(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, err := resolver.Resolve(r)
			if err != nil {
				logging.FromContext(ctx).WarnContext(ctx, "principal rejected",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = logging.With(ctx,
				slog.String("principal_role", p.Role.String()),
				slog.String("principal_scope", p.ScopeID),
			)
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.String("enduser.role", p.Role.String()),
				attribute.String("enduser.scope", p.ScopeID),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HeaderResolver trusts identity headers set by an upstream gateway.
type HeaderResolver struct {
	RoleHeader  string
	ScopeHeader string
}

// NewHeaderResolver creates a HeaderResolver reading the given header names.
func NewHeaderResolver(roleHeader, scopeHeader string) *HeaderResolver {
	return &HeaderResolver{RoleHeader: roleHeader, ScopeHeader: scopeHeader}
}

// Resolve implements PrincipalResolver. A missing role header is forbidden;
// a malformed one is a validation error located on the header.
func (h *HeaderResolver) Resolve(r *http.Request) (domain.Principal, error) {
	raw := strings.TrimSpace(r.Header.Get(h.RoleHeader))
	if raw == "" {
		return domain.Principal{}, fmt.Errorf("missing %s header: %w", h.RoleHeader, domain.ErrForbidden)
	}

	p := domain.Principal{
		Role:    domain.Role(strings.ToUpper(raw)),
		ScopeID: strings.TrimSpace(r.Header.Get(h.ScopeHeader)),
	}
	if !p.Role.IsValid() {
		return domain.Principal{}, domain.NewValidationError(
			dto.LocationHead+h.RoleHeader, fmt.Sprintf("invalid: %q", raw))
	}
	if p.Role == domain.RoleScoped && p.ScopeID == "" {
		return domain.Principal{}, domain.NewValidationError(
			dto.LocationHead+h.ScopeHeader, domain.MsgRequired)
	}
	if p.IsAdmin() {
		p.ScopeID = ""
	}
	return p, nil
}

// RemoteResolver asks the identity service who the caller is, forwarding
// the Authorization header.
type RemoteResolver struct {
	client ports.IdentityClient
}

// NewRemoteResolver creates a RemoteResolver backed by client.
func NewRemoteResolver(client ports.IdentityClient) *RemoteResolver {
	return &RemoteResolver{client: client}
}

// Resolve implements PrincipalResolver.
func (rr *RemoteResolver) Resolve(r *http.Request) (domain.Principal, error) {
	return rr.client.ResolvePrincipal(r.Context(), r.Header.Get(headerAuthorization))
}
