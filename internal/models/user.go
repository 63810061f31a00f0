package models

// Role represents what a user is allowed to do in the group
type Role string

const (
	// RoleDM allows creating sessions and managing announcements
	RoleDM Role = "dm"

	// RolePlayer allows confirming attendance and reading announcements
	RolePlayer Role = "player"
)

// User represents a member of the group's static directory.
// Passwords are plaintext because the directory is a closed demo
// credential set, not a security boundary.
type User struct {
	// Email is the login identifier
	Email string

	// Password is the login secret
	Password string

	// Name is the display name
	Name string

	// Role is the user's role in the group
	Role Role
}
