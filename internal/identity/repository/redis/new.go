package redis

import (
	"admin-srv/internal/identity/repository"
	"admin-srv/pkg/log"
	pkgRedis "admin-srv/pkg/redis"
)

const (
	keyPrefixRevoked   = "admin:auth:revoked:"
	keyPrefixResetCode = "admin:auth:reset:"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.TokenRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
