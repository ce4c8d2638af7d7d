package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleNGO   UserRole = "ngo"
	UserRoleAdmin UserRole = "admin"
)

// User represents an account within the platform. PasswordHash is a bcrypt
// hash; the clear-text password is never stored.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         UserRole
	Verified     bool
	Logo         string
	CreatedAt    time.Time
}

// CanOrganize reports whether the user may create and manage campaigns.
func (u User) CanOrganize() bool {
	return u.Role == UserRoleNGO || u.Role == UserRoleAdmin
}

// DisplayName joins the user's first and last name for donor snapshots.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
