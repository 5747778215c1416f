package memory

import (
	"context"
	"sort"
	"sync"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

type EmployeeStore struct {
	mu   sync.RWMutex
	rows map[int64]model.Employee
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{rows: make(map[int64]model.Employee)}
}

var _ repo.EmployeeRepository = (*EmployeeStore)(nil)

func (s *EmployeeStore) Insert(_ context.Context, e *model.Employee) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.EmployeeID = nextID(s.rows)
	s.rows[e.EmployeeID] = *e
	return e.EmployeeID, nil
}

func (s *EmployeeStore) FindByID(_ context.Context, id int64) (*model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &e, nil
}

func (s *EmployeeStore) ListFrom(_ context.Context, fromID int64, limit int) ([]model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Employee, 0, limit)
	for id, e := range s.rows {
		if id >= fromID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *EmployeeStore) Save(_ context.Context, e *model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[e.EmployeeID]; !ok {
		return repo.ErrNotFound
	}
	s.rows[e.EmployeeID] = *e
	return nil
}

func (s *EmployeeStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}
