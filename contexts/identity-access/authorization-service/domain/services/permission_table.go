package services

import "atelier/contexts/identity-access/authorization-service/domain/entities"

// The role/permission table is built by additive inheritance: the seller set
// extends the buyer set and the admin set extends the seller set. Higher tiers
// are always derived from the tier below so that a new buyer grant propagates
// upward automatically; the tiers must never be enumerated twice.
var buyerGrants = []entities.Permission{
	{Resource: entities.ResourceUser, Action: entities.ActionRead},
	{Resource: entities.ResourceUser, Action: entities.ActionUpdate},
	{Resource: entities.ResourceArtist, Action: entities.ActionRead},
	{Resource: entities.ResourceArtwork, Action: entities.ActionRead},
	{Resource: entities.ResourceProduct, Action: entities.ActionRead},
	{Resource: entities.ResourceCart, Action: entities.ActionCreate},
	{Resource: entities.ResourceCart, Action: entities.ActionRead},
	{Resource: entities.ResourceCart, Action: entities.ActionUpdate},
	{Resource: entities.ResourceCart, Action: entities.ActionDelete},
	{Resource: entities.ResourceOrder, Action: entities.ActionCreate},
	{Resource: entities.ResourceOrder, Action: entities.ActionRead},
	{Resource: entities.ResourceReview, Action: entities.ActionCreate},
	{Resource: entities.ResourceReview, Action: entities.ActionRead},
	{Resource: entities.ResourceReview, Action: entities.ActionUpdate},
	{Resource: entities.ResourceReview, Action: entities.ActionDelete},
}

var sellerOnlyGrants = []entities.Permission{
	{Resource: entities.ResourceArtist, Action: entities.ActionCreate},
	{Resource: entities.ResourceArtist, Action: entities.ActionUpdate},
	{Resource: entities.ResourceArtwork, Action: entities.ActionCreate},
	{Resource: entities.ResourceArtwork, Action: entities.ActionUpdate},
	{Resource: entities.ResourceArtwork, Action: entities.ActionDelete},
	{Resource: entities.ResourceProduct, Action: entities.ActionCreate},
	{Resource: entities.ResourceProduct, Action: entities.ActionUpdate},
	{Resource: entities.ResourceProduct, Action: entities.ActionDelete},
	{Resource: entities.ResourceOrder, Action: entities.ActionUpdate},
}

var adminOnlyGrants = []entities.Permission{
	{Resource: entities.ResourceUser, Action: entities.ActionCreate},
	{Resource: entities.ResourceUser, Action: entities.ActionDelete},
	{Resource: entities.ResourceUser, Action: entities.ActionManage},
	{Resource: entities.ResourceArtist, Action: entities.ActionDelete},
	{Resource: entities.ResourceOrder, Action: entities.ActionDelete},
	{Resource: entities.ResourceReview, Action: entities.ActionManage},
	{Resource: entities.ResourceAdmin, Action: entities.ActionManage},
}

var rolePermissions = buildRolePermissions()

func buildRolePermissions() map[entities.RoleKind][]entities.Permission {
	buyer := append([]entities.Permission(nil), buyerGrants...)
	seller := append(append([]entities.Permission(nil), buyer...), sellerOnlyGrants...)
	admin := append(append([]entities.Permission(nil), seller...), adminOnlyGrants...)
	return map[entities.RoleKind][]entities.Permission{
		entities.RoleBuyer:  buyer,
		entities.RoleSeller: seller,
		entities.RoleAdmin:  admin,
	}
}

// RolePermissions returns the permission set granted by a role. It is total:
// an unrecognized role yields the empty set, never an error.
func RolePermissions(role entities.RoleKind) []entities.Permission {
	grants, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	return append([]entities.Permission(nil), grants...)
}
