package jwt

import "errors"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
)

var (
	ErrSecretKeyTooShort = errors.New("jwt: secret key must be at least 32 characters")
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrInvalidTTL        = errors.New("jwt: ttl must be positive")
)
