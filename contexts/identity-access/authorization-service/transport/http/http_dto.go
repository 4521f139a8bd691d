package httptransport

import "time"

// CheckPermissionRequest is the request body for single-permission evaluation.
type CheckPermissionRequest struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// CheckResourceAccessRequest asks about one concrete resource instance.
type CheckResourceAccessRequest struct {
	Resource   string `json:"resource"`
	ResourceID string `json:"resource_id"`
}

// AccessDecisionResponse describes one allow/deny decision.
type AccessDecisionResponse struct {
	UserID     string    `json:"user_id"`
	Permission string    `json:"permission"`
	Allowed    bool      `json:"allowed"`
	Reason     string    `json:"reason"`
	CheckedAt  time.Time `json:"checked_at"`
	CacheHit   bool      `json:"cache_hit"`
}

type RoleAssignmentDTO struct {
	AssignmentID string    `json:"assignment_id"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	AssignedBy   string    `json:"assigned_by"`
	Reason       string    `json:"reason,omitempty"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type ListUserRolesResponse struct {
	UserID string              `json:"user_id"`
	Roles  []RoleAssignmentDTO `json:"roles"`
}

type AssignRoleRequest struct {
	Role   string `json:"role"`
	Reason string `json:"reason,omitempty"`
}

type AssignRoleResponse struct {
	Assignment RoleAssignmentDTO `json:"assignment"`
}

type UpgradeToSellerRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
