package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 30,
		})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 30,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 30 * time.Minute
	subject := "ada@example.com"

	svc := NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	t.Run("round trips subject and expiry", func(t *testing.T) {
		t.Parallel()
		token, err := svc.IssueToken(context.Background(), subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, subject, claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("tokens differ per issuance", func(t *testing.T) {
		t.Parallel()
		first, err := svc.IssueToken(context.Background(), subject)
		require.NoError(t, err)
		second, err := svc.IssueToken(context.Background(), subject)
		require.NoError(t, err)
		assert.NotEqual(t, first, second) // jti differs
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 30 * time.Minute
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"
	subject := "ada@example.com"

	atTime := func(at time.Time) TokenService {
		return NewTestTokenService(testSecret, tokenLifetime, func() time.Time {
			return at
		})
	}

	tests := []struct {
		name      string
		setupFunc func() (TokenService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (TokenService, string) {
				svc := atTime(fixedTime)
				token, _ := svc.IssueToken(context.Background(), subject)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "accepted one minute before expiry",
			setupFunc: func() (TokenService, string) {
				token, _ := atTime(fixedTime).IssueToken(context.Background(), subject)
				return atTime(fixedTime.Add(29 * time.Minute)), token
			},
			wantErr: nil,
		},
		{
			name: "rejected one minute after expiry",
			setupFunc: func() (TokenService, string) {
				token, _ := atTime(fixedTime).IssueToken(context.Background(), subject)
				return atTime(fixedTime.Add(31 * time.Minute)), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (TokenService, string) {
				token, _ := atTime(fixedTime).IssueToken(context.Background(), subject)
				valSvc := NewTestTokenService(wrongSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (TokenService, string) {
				return atTime(fixedTime), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (TokenService, string) {
				return atTime(fixedTime), ""
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing subject claim",
			setupFunc: func() (TokenService, string) {
				// Correctly signed but carries no subject.
				claims := jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(fixedTime),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return atTime(fixedTime), signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong signing algorithm",
			setupFunc: func() (TokenService, string) {
				// HS512 is HMAC family but not the configured method.
				claims := jwt.RegisteredClaims{
					Subject:   subject,
					IssuedAt:  jwt.NewNumericDate(fixedTime),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return atTime(fixedTime), signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry claim",
			setupFunc: func() (TokenService, string) {
				claims := jwt.RegisteredClaims{
					Subject:  subject,
					IssuedAt: jwt.NewNumericDate(fixedTime),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return atTime(fixedTime), signed
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, subject, claims.Subject)
			}
		})
	}
}
