// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=1,max=128"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the identity token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AccountUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new user account. It returns an acknowledgement
	// only: neither the password hash nor a token leaves the usecase.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues an identity token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
