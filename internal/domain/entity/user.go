// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. It is created once at registration and
// never mutated or deleted afterwards.
type User struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the user.
	Username     string    `json:"username"`   // The login name, unique across the store.
	PasswordHash string    `json:"-"`          // The bcrypt-hashed password. Never exposed outside the domain.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was registered.
}
