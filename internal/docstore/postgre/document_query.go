package postgre

import (
	"fmt"

	"admin-srv/internal/docstore"
)

const (
	getDocumentQuery    = "SELECT data FROM " + tableDocuments + " WHERE collection = $1 AND id = $2"
	deleteDocumentQuery = "DELETE FROM " + tableDocuments + " WHERE collection = $1 AND id = $2"
	setDocumentQuery    = "INSERT INTO " + tableDocuments + " (collection, id, data, created_at, updated_at) VALUES ($1, $2, $3::jsonb, now(), now()) ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()"
	updateDocumentQuery = "UPDATE " + tableDocuments + " SET data = data || $3::jsonb, updated_at = now() WHERE collection = $1 AND id = $2"
)

// buildRunQuery renders the page statement: filters, range, orders, cursor and limit.
func buildRunQuery(q docstore.Query) (string, []any, error) {
	b := &sqlBuilder{}
	where, err := b.where(q, true)
	if err != nil {
		return "", nil, err
	}
	stmt := fmt.Sprintf("SELECT id, data FROM %s WHERE %s ORDER BY %s", tableDocuments, where, b.orderBy(docstore.EffectiveOrders(q)))
	if q.Limit > 0 {
		stmt += " LIMIT " + b.arg(q.Limit)
	}
	return stmt, b.args, nil
}

// buildCountQuery renders the count statement: the run statement without
// ordering, cursor or limit.
func buildCountQuery(q docstore.Query) (string, []any, error) {
	b := &sqlBuilder{}
	where, err := b.where(q, false)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", tableDocuments, where), b.args, nil
}
