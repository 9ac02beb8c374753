// Package model defines domain entities for the application.
package model

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user.
// Admins are filtered out of the public listing and single-user endpoint.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin returns true for admin users.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
