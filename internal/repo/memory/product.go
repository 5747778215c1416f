package memory

import (
	"context"
	"sort"
	"sync"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

type ProductStore struct {
	mu   sync.RWMutex
	rows map[int64]model.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{rows: make(map[int64]model.Product)}
}

var _ repo.ProductRepository = (*ProductStore)(nil)

func (s *ProductStore) Insert(_ context.Context, p *model.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ProductID = nextID(s.rows)
	s.rows[p.ProductID] = *p
	return p.ProductID, nil
}

func (s *ProductStore) FindByID(_ context.Context, id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (s *ProductStore) ListFrom(_ context.Context, fromID int64, limit int) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, limit)
	for id, p := range s.rows {
		if id >= fromID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ProductStore) ListByCategory(_ context.Context, categoryID int64) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Product
	for _, p := range s.rows {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (s *ProductStore) Save(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[p.ProductID]; !ok {
		return repo.ErrNotFound
	}
	s.rows[p.ProductID] = *p
	return nil
}

func (s *ProductStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}
