package middleware

import (
	"context"

	"admin-srv/pkg/log"
	"admin-srv/pkg/scope"
)

// TokenVerifier checks a bearer token, including revocation.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (scope.Payload, error)
}

// Config holds the middleware settings.
type Config struct {
	CookieName     string
	AllowedOrigins []string

	// AuthRequestsPerMinute and AuthBurst bound unauthenticated auth calls per client IP.
	AuthRequestsPerMinute int
	AuthBurst             int
}

type Middleware struct {
	l           log.Logger
	verifier    TokenVerifier
	cfg         Config
	authLimiter *ipRateLimiter
}

func New(l log.Logger, verifier TokenVerifier, cfg Config) Middleware {
	return Middleware{
		l:           l,
		verifier:    verifier,
		cfg:         cfg,
		authLimiter: newIPRateLimiter(cfg.AuthRequestsPerMinute, cfg.AuthBurst),
	}
}
