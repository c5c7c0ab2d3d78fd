package domain

import "fmt"

// Role identifies the authority level of a caller.
type Role string

const (
	// RoleAdmin may act on any lead and any board.
	RoleAdmin Role = "ADMIN"
	// RoleScoped may act only on leads it owns and on global or owned boards.
	RoleScoped Role = "SCOPED"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleScoped:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Principal is the already-resolved caller identity. ScopeID is the agent
// identifier for scoped callers and is ignored for admins.
type Principal struct {
	Role    Role
	ScopeID string
}

// Admin returns an admin principal.
func Admin() Principal {
	return Principal{Role: RoleAdmin}
}

// Scoped returns a principal restricted to the given agent scope.
func Scoped(scopeID string) Principal {
	return Principal{Role: RoleScoped, ScopeID: scopeID}
}

// IsAdmin reports whether the principal has unrestricted access.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal may act on a resource owned by ownerID.
func (p Principal) Owns(ownerID string) bool {
	return p.IsAdmin() || (p.ScopeID != "" && p.ScopeID == ownerID)
}

// Validate checks that the principal is usable for authorization decisions.
func (p Principal) Validate() error {
	fields := make(map[string]string)
	if !p.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", p.Role)
	}
	if p.Role == RoleScoped && p.ScopeID == "" {
		fields["scope_id"] = MsgRequired
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
