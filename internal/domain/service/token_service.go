package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an identity token.
// UserID is the only identity claim; authorization decisions derive from it.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed token carrying the given user's identity.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks the signature and structure of a token string and
	// returns its decoded claims.
	Validate(tokenString string) (*Claims, error)
}
