package memory

import (
	"sync"

	"admin-srv/internal/docstore"
)

type implStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

// New returns an empty in-memory docstore.Store.
func New() docstore.Store {
	return &implStore{
		collections: make(map[string]map[string]map[string]any),
	}
}
