package entities

// ResourceKind enumerates the protected resource types on the platform.
type ResourceKind string

// ActionKind enumerates the operations a permission can grant on a resource.
type ActionKind string

const (
	ResourceUser    ResourceKind = "user"
	ResourceArtist  ResourceKind = "artist"
	ResourceArtwork ResourceKind = "artwork"
	ResourceProduct ResourceKind = "product"
	ResourceCart    ResourceKind = "cart"
	ResourceOrder   ResourceKind = "order"
	ResourceReview  ResourceKind = "review"
	ResourceAdmin   ResourceKind = "admin"

	ActionCreate ActionKind = "create"
	ActionRead   ActionKind = "read"
	ActionUpdate ActionKind = "update"
	ActionDelete ActionKind = "delete"
	ActionManage ActionKind = "manage"
)

// Permission is an immutable (resource, action) capability token.
// Equality is structural on both fields; Name is derived and never load-bearing.
type Permission struct {
	Resource ResourceKind
	Action   ActionKind
}

func NewPermission(resource ResourceKind, action ActionKind) Permission {
	return Permission{Resource: resource, Action: action}
}

// Name renders a human-readable identifier, e.g. "artwork:update".
func (p Permission) Name() string {
	return string(p.Resource) + ":" + string(p.Action)
}

func (p Permission) Equals(other Permission) bool {
	return p.Resource == other.Resource && p.Action == other.Action
}
