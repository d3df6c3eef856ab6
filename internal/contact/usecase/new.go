package usecase

import (
	"time"

	"admin-srv/internal/audit"
	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	"admin-srv/pkg/log"
	pkgMinio "admin-srv/pkg/minio"
)

type implUseCase struct {
	l       log.Logger
	store   docstore.Store
	queryUC query.UseCase
	storage pkgMinio.MinIO
	audit   audit.UseCase
	now     func() time.Time
}

func New(l log.Logger, store docstore.Store, queryUC query.UseCase, storage pkgMinio.MinIO, auditUC audit.UseCase) contact.UseCase {
	return &implUseCase{
		l:       l,
		store:   store,
		queryUC: queryUC,
		storage: storage,
		audit:   auditUC,
		now:     time.Now,
	}
}
