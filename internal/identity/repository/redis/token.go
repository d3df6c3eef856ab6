package redis

import (
	"context"
	"errors"
	"time"

	"admin-srv/internal/identity/repository"
	pkgRedis "admin-srv/pkg/redis"
)

// RevokeToken - Mark a token id as revoked until ttl elapses.
func (r *implRepository) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.redis.Set(ctx, keyPrefixRevoked+tokenID, 1, ttl); err != nil {
		r.l.Errorf(ctx, "identity.repository.redis.RevokeToken: Failed to revoke token: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.redis.Exists(ctx, keyPrefixRevoked+tokenID)
}

// SaveResetCode - Store a single use reset code for accountID.
func (r *implRepository) SaveResetCode(ctx context.Context, code, accountID string, ttl time.Duration) error {
	if err := r.redis.Set(ctx, keyPrefixResetCode+code, accountID, ttl); err != nil {
		r.l.Errorf(ctx, "identity.repository.redis.SaveResetCode: Failed to save reset code: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) ConsumeResetCode(ctx context.Context, code string) (string, error) {
	accountID, err := r.redis.GetDel(ctx, keyPrefixResetCode+code)
	if errors.Is(err, pkgRedis.ErrNil) {
		return "", repository.ErrResetCodeNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "identity.repository.redis.ConsumeResetCode: Failed to consume reset code: %v", err)
		return "", err
	}
	return accountID, nil
}
