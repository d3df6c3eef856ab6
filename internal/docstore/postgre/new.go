package postgre

import (
	"database/sql"

	"admin-srv/internal/docstore"
	"admin-srv/pkg/log"
)

const tableDocuments = "documents"

type implStore struct {
	db *sql.DB
	l  log.Logger
}

// New returns a docstore.Store backed by the documents table.
// String ordering is bytewise only on a C-collated database.
func New(db *sql.DB, l log.Logger) docstore.Store {
	return &implStore{
		db: db,
		l:  l,
	}
}
