package service

import (
	"context"
	"errors"
	"io"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// EmployeeService — управление сотрудниками и их фотографиями.
type EmployeeService struct {
	repo repo.EmployeeRepository
}

func NewEmployeeService(r repo.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: r}
}

func (s *EmployeeService) Create(ctx context.Context, e *model.Employee) (int64, error) {
	if e == nil {
		return 0, ErrInvalidArgument
	}
	e.EmployeeID = 0
	return s.repo.Insert(ctx, e)
}

// Get возвращает found=false на промах, ошибку — только на сбой хранилища.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*model.Employee, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

// List выбирает сотрудников с ключом >= offset, не больше limit, по возрастанию.
func (s *EmployeeService) List(ctx context.Context, offset int64, limit int) ([]model.Employee, error) {
	return s.repo.ListFrom(ctx, offset, limit)
}

// Update перезаписывает все поля кроме фотографии. false — если id не
// совпадает с ключом в сущности или записи нет.
func (s *EmployeeService) Update(ctx context.Context, id int64, e *model.Employee) (bool, error) {
	if e == nil || id <= 0 {
		return false, ErrInvalidArgument
	}
	if id != e.EmployeeID {
		return false, nil
	}

	stored, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	stored.LastName = e.LastName
	stored.FirstName = e.FirstName
	stored.Title = e.Title
	stored.TitleOfCourtesy = e.TitleOfCourtesy
	stored.BirthDate = e.BirthDate
	stored.HireDate = e.HireDate
	stored.Address = e.Address
	stored.City = e.City
	stored.Region = e.Region
	stored.PostalCode = e.PostalCode
	stored.Country = e.Country
	stored.HomePhone = e.HomePhone
	stored.Extension = e.Extension
	stored.Notes = e.Notes
	stored.ReportsTo = e.ReportsTo

	if err := s.repo.Save(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArgument
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *EmployeeService) GetPhoto(ctx context.Context, id int64) ([]byte, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e.Photo, true, nil
}

// PutPhoto вычитывает поток целиком и заменяет фотографию, не трогая
// остальные поля записи.
func (s *EmployeeService) PutPhoto(ctx context.Context, id int64, r io.Reader) (bool, error) {
	if id <= 0 || r == nil {
		return false, ErrInvalidArgument
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	e.Photo = data
	if err := s.repo.Save(ctx, e); err != nil {
		return false, err
	}
	return true, nil
}

func (s *EmployeeService) DeletePhoto(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArgument
	}
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	e.Photo = []byte{}
	if err := s.repo.Save(ctx, e); err != nil {
		return false, err
	}
	return true, nil
}
