package jwt

import (
	"time"

	"admin-srv/pkg/scope"
)

// IManager issues and verifies HS256 bearer tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
	TTL() time.Duration
}

// New creates a new JWT manager.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretKeyTooShort
	}
	if cfg.TTL <= 0 {
		return nil, ErrInvalidTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
		now:       time.Now,
	}, nil
}
