// Package mocks provides hand-rolled test doubles for the store and service
// interfaces. Each mock returns its configured fields or delegates to an
// optional function override.
package mocks

import (
	"context"

	"blogapi/internal/service/auth"
)

// MockTokenService is a configurable test double for auth.TokenService.
type MockTokenService struct {
	// Token is returned by IssueToken when IssueTokenFn is nil.
	Token string
	// IssueErr is returned by IssueToken when IssueTokenFn is nil.
	IssueErr error
	// Claims is returned by ValidateToken when ValidateTokenFn is nil.
	Claims *auth.Claims
	// ValidateErr is returned by ValidateToken when ValidateTokenFn is nil.
	ValidateErr error

	// Optional overrides.
	IssueTokenFn    func(ctx context.Context, subject string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.TokenService = (*MockTokenService)(nil)

// IssueToken implements auth.TokenService.
func (m *MockTokenService) IssueToken(ctx context.Context, subject string) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, subject)
	}
	return m.Token, m.IssueErr
}

// ValidateToken implements auth.TokenService.
func (m *MockTokenService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
