// Package identity translates the identity service's session payloads into
// domain principals.
package identity

// SessionDTO matches the identity service's current-session response.
type SessionDTO struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
	AgentID   string `json:"agent_id,omitempty"`
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Downstream role names.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)
