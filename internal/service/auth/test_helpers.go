package auth

import "time"

// NewTestTokenService creates a token service with an injectable time
// function for predictable expiry testing. Intended for use in tests only.
func NewTestTokenService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
	}
}
