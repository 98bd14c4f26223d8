// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"qna/internal/domain/entity"
)

// Domain-specific errors for user persistence. The application layer handles
// these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username unique index is violated.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for the credential store.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateUsername when the
	// username is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
