package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"admin-srv/internal/docstore"
)

func (s *implStore) Run(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if err := docstore.Validate(q); err != nil {
		return nil, err
	}
	stmt, args, err := buildRunQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Run: Failed to query %s: %v", q.Collection, err)
		return nil, mapError(err)
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, mapError(err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, docstore.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return docs, nil
}

func (s *implStore) Count(ctx context.Context, q docstore.Query) (int64, error) {
	q.Limit = 0
	q.StartAfter = nil
	if err := docstore.Validate(q); err != nil {
		return 0, err
	}
	stmt, args, err := buildCountQuery(q)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Count: Failed to count %s: %v", q.Collection, err)
		return 0, mapError(err)
	}
	return n, nil
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, getDocumentQuery, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.Document{}, docstore.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Get: Failed to get %s/%s: %v", collection, id, err)
		return docstore.Document{}, mapError(err)
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return docstore.Document{}, err
	}
	return docstore.Document{ID: id, Fields: fields}, nil
}

func (s *implStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := buildSetArgs(fields)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, setDocumentQuery, collection, id, data); err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Set: Failed to set %s/%s: %v", collection, id, err)
		return mapError(err)
	}
	return nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := buildSetArgs(fields)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, updateDocumentQuery, collection, id, data)
	if err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Update: Failed to update %s/%s: %v", collection, id, err)
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx, deleteDocumentQuery, collection, id); err != nil {
		s.l.Errorf(ctx, "docstore.postgre.Delete: Failed to delete %s/%s: %v", collection, id, err)
		return mapError(err)
	}
	return nil
}

func (s *implStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

func decodeFields(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("docstore: decode document: %w", err)
	}
	return fields, nil
}

// mapError translates driver failures into docstore sentinels, keeping the
// driver message.
func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", docstore.ErrUnavailable, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "42501":
			return fmt.Errorf("%w: %s", docstore.ErrPermissionDenied, pqErr.Message)
		case pqErr.Code.Class() == "08" || pqErr.Code.Class() == "57":
			return fmt.Errorf("%w: %s", docstore.ErrUnavailable, pqErr.Message)
		case pqErr.Code.Class() == "22":
			return fmt.Errorf("%w: %s", docstore.ErrInvalidQuery, pqErr.Message)
		}
	}
	return fmt.Errorf("docstore: %w", err)
}
