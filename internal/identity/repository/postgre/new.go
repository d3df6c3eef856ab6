package postgre

import (
	"database/sql"
	"time"

	"admin-srv/internal/identity/repository"
	"admin-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

func New(db *sql.DB, l log.Logger) repository.AccountRepository {
	return &implRepository{
		db:  db,
		l:   l,
		now: time.Now,
	}
}
