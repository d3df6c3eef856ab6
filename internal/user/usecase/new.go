package usecase

import (
	"time"

	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/query"
	"admin-srv/internal/user"
	"admin-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	store    docstore.Store
	queryUC  query.UseCase
	identity identity.UseCase
	audit    audit.UseCase
	now      func() time.Time
}

func New(l log.Logger, store docstore.Store, queryUC query.UseCase, identityUC identity.UseCase, auditUC audit.UseCase) user.UseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		queryUC:  queryUC,
		identity: identityUC,
		audit:    auditUC,
		now:      time.Now,
	}
}
