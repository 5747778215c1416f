package service

import (
	"context"
	"errors"
	"io"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// CategoryService — управление категориями и их картинками.
// Картинка — отдельный саб-ресурс: полное обновление категории её не трогает.
type CategoryService struct {
	repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) Create(ctx context.Context, c *model.Category) (int64, error) {
	if c == nil {
		return 0, ErrInvalidArgument
	}
	c.CategoryID = 0
	return s.repo.Insert(ctx, c)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func (s *CategoryService) List(ctx context.Context, offset int64, limit int) ([]model.Category, error) {
	return s.repo.ListFrom(ctx, offset, limit)
}

// Update меняет имя и описание; картинка сохраняется как была.
func (s *CategoryService) Update(ctx context.Context, id int64, c *model.Category) (bool, error) {
	if c == nil || id <= 0 {
		return false, ErrInvalidArgument
	}
	if id != c.CategoryID {
		return false, nil
	}

	stored, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	stored.CategoryName = c.CategoryName
	stored.Description = c.Description

	if err := s.repo.Save(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
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

func (s *CategoryService) GetPicture(ctx context.Context, id int64) ([]byte, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return c.Picture, true, nil
}

func (s *CategoryService) PutPicture(ctx context.Context, id int64, r io.Reader) (bool, error) {
	if id <= 0 || r == nil {
		return false, ErrInvalidArgument
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	c.Picture = data
	if err := s.repo.Save(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CategoryService) DeletePicture(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArgument
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	c.Picture = []byte{}
	if err := s.repo.Save(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}
