package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

var _ ports.IdentityClient = (*IdentityClient)(nil)

// SessionPath is the identity service endpoint describing the caller.
const SessionPath = "/api/v1/sessions/current"

// IdentityClient is the outbound adapter for the identity service. It
// forwards the caller's Authorization header and translates the session it
// gets back into a domain.Principal.
type IdentityClient struct {
	req    *Requester
	logger *slog.Logger
	now    func() time.Time
}

// NewIdentityClient creates an IdentityClient on top of client, whose base
// URL points at the identity service root.
func NewIdentityClient(client *httpclient.Client, logger *slog.Logger) *IdentityClient {
	return &IdentityClient{
		req:    NewRequester(client, logger),
		logger: logger,
		now:    time.Now,
	}
}

// ResolvePrincipal implements ports.IdentityClient. An empty credential is
// rejected without a round trip.
func (c *IdentityClient) ResolvePrincipal(ctx context.Context, authorization string) (domain.Principal, error) {
	if authorization == "" {
		return domain.Principal{}, fmt.Errorf("missing credentials: %w", domain.ErrForbidden)
	}

	header := http.Header{}
	header.Set("Authorization", authorization)

	var dto identity.SessionDTO
	if err := c.req.Do(ctx, http.MethodGet, SessionPath, header, nil, &dto); err != nil {
		if IsTransport(err) {
			return domain.Principal{}, err
		}
		return domain.Principal{}, fmt.Errorf("resolving session: %w", err)
	}

	p, err := identity.ToPrincipal(&dto, c.now())
	if err != nil {
		c.logger.WarnContext(ctx, "session rejected",
			slog.String("subject_id", dto.SubjectID),
			slog.String("error", err.Error()),
		)
		return domain.Principal{}, err
	}
	return p, nil
}
