package user

import "opsdash/internal/common"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleOwner  Role = "Owner"
	RoleEditor Role = "Editor"
)

type User struct {
	ID         common.UUID `json:"id"`
	Email      string      `json:"email"`
	Password   string      `json:"password,omitempty"`
	Phone      string      `json:"phone"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Role       Role        `json:"role"`
	Gender     string      `json:"gender"`
	ProfilePic string      `json:"profile_pic"`
}

// CanManageUsers reports whether the role may create, edit, or delete other
// accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleOwner
}

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleEditor:
		return true
	default:
		return false
	}
}
