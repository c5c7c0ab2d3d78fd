package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// ToPrincipal converts a session into a principal. Inactive or expired
// sessions and unknown roles yield domain.ErrForbidden; an agent session
// without an agent id is a domain.ErrValidation.
func ToPrincipal(dto *SessionDTO, now time.Time) (domain.Principal, error) {
	if !dto.Active {
		return domain.Principal{}, fmt.Errorf("session for %q inactive: %w", dto.SubjectID, domain.ErrForbidden)
	}
	if dto.ExpiresAt != "" {
		exp, err := time.Parse(time.RFC3339, dto.ExpiresAt)
		if err != nil {
			return domain.Principal{}, domain.NewValidationError("expires_at", "invalid timestamp")
		}
		if !now.Before(exp) {
			return domain.Principal{}, fmt.Errorf("session for %q expired: %w", dto.SubjectID, domain.ErrForbidden)
		}
	}

	var p domain.Principal
	switch strings.ToLower(dto.Role) {
	case RoleAdmin:
		p = domain.Admin()
	case RoleAgent:
		p = domain.Scoped(dto.AgentID)
	default:
		return domain.Principal{}, fmt.Errorf("role %q: %w", dto.Role, domain.ErrForbidden)
	}

	if err := p.Validate(); err != nil {
		return domain.Principal{}, err
	}
	return p, nil
}
