package identity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

func TestToPrincipal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dto     identity.SessionDTO
		want    domain.Principal
		wantErr error
	}{
		{
			name: "admin",
			dto:  identity.SessionDTO{SubjectID: "u-1", Role: "admin", Active: true},
			want: domain.Admin(),
		},
		{
			name: "agent upper case",
			dto:  identity.SessionDTO{SubjectID: "u-2", Role: "AGENT", AgentID: "agent-7", Active: true},
			want: domain.Scoped("agent-7"),
		},
		{
			name: "agent with future expiry",
			dto: identity.SessionDTO{
				SubjectID: "u-2", Role: "agent", AgentID: "agent-7", Active: true,
				ExpiresAt: "2026-03-01T13:00:00Z",
			},
			want: domain.Scoped("agent-7"),
		},
		{
			name:    "inactive",
			dto:     identity.SessionDTO{SubjectID: "u-3", Role: "admin"},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "expired",
			dto: identity.SessionDTO{
				SubjectID: "u-4", Role: "admin", Active: true,
				ExpiresAt: "2026-03-01T12:00:00Z",
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "unknown role",
			dto:     identity.SessionDTO{SubjectID: "u-5", Role: "auditor", Active: true},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "agent without scope",
			dto:     identity.SessionDTO{SubjectID: "u-6", Role: "agent", Active: true},
			wantErr: domain.ErrValidation,
		},
		{
			name: "bad expiry",
			dto: identity.SessionDTO{
				SubjectID: "u-7", Role: "admin", Active: true, ExpiresAt: "tomorrow",
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := identity.ToPrincipal(&tt.dto, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToPrincipal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToPrincipal() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToPrincipal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
