// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User represents a registered account. Username and email are each unique
// across all accounts. PasswordHash is an opaque bcrypt digest and must never
// leave the service boundary; handlers expose users only through PublicUser.
type User struct {
	ID           uint      // Primary key, assigned by the database on creation.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	FullName     string    // Optional display name, may be empty.
	PasswordHash string    // Salted bcrypt digest of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
