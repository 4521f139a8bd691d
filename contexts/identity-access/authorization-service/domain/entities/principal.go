package entities

// Principal is the authenticated actor for one authorization check.
// It is supplied per call by the identity collaborator and never persisted here.
type Principal struct {
	UserID   string     `json:"user_id"`
	IsActive bool       `json:"is_active"`
	Roles    []RoleKind `json:"roles"`
}

func (p Principal) HasRole(role RoleKind) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the admin tier.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
