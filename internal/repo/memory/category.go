package memory

import (
	"context"
	"sort"
	"sync"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

type CategoryStore struct {
	mu   sync.RWMutex
	rows map[int64]model.Category
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{rows: make(map[int64]model.Category)}
}

var _ repo.CategoryRepository = (*CategoryStore)(nil)

func (s *CategoryStore) Insert(_ context.Context, c *model.Category) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CategoryID = nextID(s.rows)
	s.rows[c.CategoryID] = *c
	return c.CategoryID, nil
}

func (s *CategoryStore) FindByID(_ context.Context, id int64) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &c, nil
}

func (s *CategoryStore) ListFrom(_ context.Context, fromID int64, limit int) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, 0, limit)
	for id, c := range s.rows {
		if id >= fromID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *CategoryStore) Save(_ context.Context, c *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[c.CategoryID]; !ok {
		return repo.ErrNotFound
	}
	s.rows[c.CategoryID] = *c
	return nil
}

func (s *CategoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}
