package usecase

import (
	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/log"
)

type implUseCase struct {
	store docstore.Store
	enc   encrypter.Encrypter
	l     log.Logger
}

// New creates the query composer. enc seals the page cursors handed to clients.
func New(store docstore.Store, enc encrypter.Encrypter, l log.Logger) query.UseCase {
	return &implUseCase{
		store: store,
		enc:   enc,
		l:     l,
	}
}
