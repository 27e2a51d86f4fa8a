package models

// Role is the access tier assigned to a user. It gates course visibility
// and is fixed at registration.
type Role string

const (
	RoleStudent            Role = "student"
	RoleDeveloper          Role = "developer"
	RoleSocialMediaManager Role = "social-media-manager"
	RoleNormalUser         Role = "normal-user"
)

// Roles lists every valid role, in the order they are offered at signup.
func Roles() []Role {
	return []Role{RoleStudent, RoleDeveloper, RoleSocialMediaManager, RoleNormalUser}
}

// Valid reports whether r is a member of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleDeveloper, RoleSocialMediaManager, RoleNormalUser:
		return true
	}
	return false
}

// User represents an account known to the content backend. The session
// token is carried separately and never serialized with the user.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
