package services

import "atelier/contexts/identity-access/authorization-service/domain/entities"

// Pure decision functions over a principal and a requested capability.
// All functions are total over well-formed input and deny rather than fail.

// HasPermission reports whether the union of the principal's role grants
// contains the permission. Inactive principals are always denied.
func HasPermission(principal entities.Principal, permission entities.Permission) bool {
	if !principal.IsActive {
		return false
	}
	for _, role := range principal.Roles {
		for _, granted := range rolePermissions[role] {
			if granted.Equals(permission) {
				return true
			}
		}
	}
	return false
}

// HasResourceAccess is a convenience wrapper over HasPermission.
func HasResourceAccess(principal entities.Principal, resource entities.ResourceKind, action entities.ActionKind) bool {
	return HasPermission(principal, entities.NewPermission(resource, action))
}

// ResourceRuling is the outcome of the instance-level policy table. Rulings
// that need an ownership or involvement lookup are resolved by the caller
// against the ownership gateway.
type ResourceRuling int

const (
	RulingDeny ResourceRuling = iota
	RulingAllow
	RulingNeedsOwnership
	RulingNeedsOrderInvolvement
)

// ResourceAccessPolicy decides instance-level access for a concrete resource id:
//   - user/cart: self or admin (a cart id equals the owning user id).
//   - artwork/product: admin always; an active seller gets an ownership
//     check against the catalog's ownership records.
//   - order: admin always; otherwise requires an involvement check.
//   - anything else: admin only.
func ResourceAccessPolicy(principal entities.Principal, resourceID string, kind entities.ResourceKind) ResourceRuling {
	if !principal.IsActive {
		return RulingDeny
	}
	if principal.IsAdmin() {
		return RulingAllow
	}
	switch kind {
	case entities.ResourceUser, entities.ResourceCart:
		if principal.UserID == resourceID {
			return RulingAllow
		}
		return RulingDeny
	case entities.ResourceArtwork, entities.ResourceProduct:
		if principal.HasRole(entities.RoleSeller) {
			return RulingNeedsOwnership
		}
		return RulingDeny
	case entities.ResourceOrder:
		return RulingNeedsOrderInvolvement
	default:
		return RulingDeny
	}
}

// CanAssignRole reports whether the assigner may grant targetRole to another
// principal. Only an active admin may grant roles.
func CanAssignRole(assigner entities.Principal, targetRole entities.RoleKind) bool {
	if _, ok := rolePermissions[targetRole]; !ok {
		return false
	}
	return assigner.IsActive && assigner.IsAdmin()
}

// CanUpgradeToSeller reports whether the principal may self-upgrade: it must
// be active and hold exactly buyer-tier access.
func CanUpgradeToSeller(principal entities.Principal) bool {
	if !principal.IsActive {
		return false
	}
	return principal.HasRole(entities.RoleBuyer) &&
		!principal.HasRole(entities.RoleSeller) &&
		!principal.HasRole(entities.RoleAdmin)
}

// roleTransitions is the fixed transition table. Admin cannot be reached via
// transition; it is provisioned out-of-band.
var roleTransitions = map[entities.RoleKind][]entities.RoleKind{
	entities.RoleBuyer:  {entities.RoleSeller},
	entities.RoleSeller: {entities.RoleBuyer},
	entities.RoleAdmin:  {entities.RoleBuyer, entities.RoleSeller},
}

// ValidateRoleTransition checks a (from, to) pair against the transition table.
func ValidateRoleTransition(from, to entities.RoleKind) bool {
	for _, allowed := range roleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
