package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing JWT authentication tokens.
type TokenService interface {
	// IssueToken creates a signed access token with the given subject (the
	// user's email). Returns the compact token string or an error if signing
	// fails.
	IssueToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, wrong algorithm,
	// malformed, or missing subject).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of an access token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}
