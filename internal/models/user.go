package models

// UserRole represents a role claim in an externally issued token
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// User is the identity carried by a bearer token. Accounts live in the
// external member system; this service never stores credentials.
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// IsAdmin reports whether the user may access the admin lead endpoints
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
