package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"admin-srv/internal/identity/repository"
	"admin-srv/pkg/log"
	pkgRedis "admin-srv/pkg/redis"
)

var _ pkgRedis.IRedis = (*fakeRedis)(nil)

// fakeRedis is an in-memory pkgRedis.IRedis without expiry.
type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) GetDel(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", pkgRedis.ErrNil
	}
	delete(f.data, key)
	return v, nil
}

func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeRedis) Ping(ctx context.Context) error { return nil }
func (f *fakeRedis) Close() error { return nil }

func TestResetCodeIsSingleUse(t *testing.T) {
	f := newFakeRedis()
	r := New(f, log.NewNop())
	ctx := context.Background()

	if err := r.SaveResetCode(ctx, "code1", "a1", time.Hour); err != nil {
		t.Fatalf("SaveResetCode: %v", err)
	}
	if f.ttls[keyPrefixResetCode+"code1"] != time.Hour {
		t.Errorf("ttl = %v, want 1h", f.ttls[keyPrefixResetCode+"code1"])
	}

	id, err := r.ConsumeResetCode(ctx, "code1")
	if err != nil || id != "a1" {
		t.Fatalf("ConsumeResetCode = %q, %v", id, err)
	}
	if _, err := r.ConsumeResetCode(ctx, "code1"); !errors.Is(err, repository.ErrResetCodeNotFound) {
		t.Fatalf("second ConsumeResetCode err = %v, want ErrResetCodeNotFound", err)
	}
}

func TestRevokeToken(t *testing.T) {
	r := New(newFakeRedis(), log.NewNop())
	ctx := context.Background()

	if err := r.RevokeToken(ctx, "jti1", time.Minute); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	revoked, err := r.IsTokenRevoked(ctx, "jti1")
	if err != nil || !revoked {
		t.Fatalf("IsTokenRevoked(jti1) = %v, %v", revoked, err)
	}

	if err := r.RevokeToken(ctx, "expired", 0); err != nil {
		t.Fatalf("RevokeToken expired: %v", err)
	}
	if revoked, _ := r.IsTokenRevoked(ctx, "expired"); revoked {
		t.Error("an already expired token needs no revocation entry")
	}
}
