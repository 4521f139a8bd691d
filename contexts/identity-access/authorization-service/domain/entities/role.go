package entities

import (
	"strings"
	"time"
)

// RoleKind is the closed role enumeration. Tiers nest strictly:
// seller's grant set contains buyer's, admin's contains seller's.
type RoleKind string

const (
	RoleBuyer  RoleKind = "buyer"
	RoleSeller RoleKind = "seller"
	RoleAdmin  RoleKind = "admin"
)

// ParseRole maps a raw role claim from the identity provider onto RoleKind.
// Unrecognized claims resolve to false rather than failing.
func ParseRole(raw string) (RoleKind, bool) {
	switch RoleKind(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleBuyer:
		return RoleBuyer, true
	case RoleSeller:
		return RoleSeller, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// ParseRoles maps raw role claims onto the known RoleKind set, dropping
// anything unrecognized.
func ParseRoles(raw []string) []RoleKind {
	roles := make([]RoleKind, 0, len(raw))
	for _, claim := range raw {
		if role, ok := ParseRole(claim); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// RoleAssignment is the persisted record of a principal's current role.
type RoleAssignment struct {
	AssignmentID string    `json:"assignment_id"`
	UserID       string    `json:"user_id"`
	Role         RoleKind  `json:"role"`
	AssignedBy   string    `json:"assigned_by"`
	Reason       string    `json:"reason"`
	AssignedAt   time.Time `json:"assigned_at"`
}
