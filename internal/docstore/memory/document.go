package memory

import (
	"context"
	"maps"

	"admin-srv/internal/docstore"
)

func (s *implStore) Run(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if err := docstore.Validate(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := s.match(q)
	orders := docstore.EffectiveOrders(q)
	docstore.Sort(docs, orders)

	if q.StartAfter != nil {
		start := len(docs)
		for i, d := range docs {
			if docstore.After(d, q.StartAfter, orders) {
				start = i
				break
			}
		}
		docs = docs[start:]
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *implStore) Count(ctx context.Context, q docstore.Query) (int64, error) {
	q.Limit = 0
	q.StartAfter = nil
	if err := docstore.Validate(q); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(s.match(q))), nil
}

func (s *implStore) match(q docstore.Query) []docstore.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]docstore.Document, 0)
	for id, fields := range s.collections[q.Collection] {
		doc := docstore.Document{ID: id, Fields: fields}
		if docstore.Matches(doc, q) {
			docs = append(docs, docstore.Document{ID: id, Fields: maps.Clone(fields)})
		}
	}
	return docs
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Fields: maps.Clone(fields)}, nil
}

func (s *implStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string]map[string]any)
		s.collections[collection] = c
	}
	c[id] = maps.Clone(fields)
	return nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	merged := maps.Clone(existing)
	maps.Copy(merged, fields)
	s.collections[collection][id] = merged
	return nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *implStore) Ping(ctx context.Context) error {
	return nil
}
