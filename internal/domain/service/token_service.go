package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the session token.
type Claims struct {
	AccountID uuid.UUID
	Username  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. It abstracts the token format from the use cases; the core only
// needs "logged in or not".
type TokenService interface {
	// Generate creates a signed session token for an operator account.
	Generate(accountID uuid.UUID, username string) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured session token lifetime.
	TTL() time.Duration
}
