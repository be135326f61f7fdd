package types

// Role represents the authorization role of an actor
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOfficer   Role = "officer"
	RoleAnonymous Role = "anonymous"
)

// IsValid checks if the role is a persistable identity role.
// RoleAnonymous is a derived runtime role, never stored.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOfficer:
		return true
	default:
		return false
	}
}

// CanManageCases reports whether the role may mutate cases
func (r Role) CanManageCases() bool {
	return r == RoleAdmin || r == RoleOfficer
}

// CanAdminister reports whether the role may manage users and delete cases
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
