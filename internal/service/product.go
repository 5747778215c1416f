package service

import (
	"context"
	"errors"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// ProductService — управление товарами.
type ProductService struct {
	repo repo.ProductRepository
}

func NewProductService(r repo.ProductRepository) *ProductService {
	return &ProductService{repo: r}
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if p == nil {
		return 0, ErrInvalidArgument
	}
	p.ProductID = 0
	return s.repo.Insert(ctx, p)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (s *ProductService) List(ctx context.Context, offset int64, limit int) ([]model.Product, error) {
	return s.repo.ListFrom(ctx, offset, limit)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if categoryID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListByCategory(ctx, categoryID)
}

// Update перезаписывает все бизнес-поля товара.
func (s *ProductService) Update(ctx context.Context, id int64, p *model.Product) (bool, error) {
	if p == nil || id <= 0 {
		return false, ErrInvalidArgument
	}
	if id != p.ProductID {
		return false, nil
	}

	stored, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	stored.ProductName = p.ProductName
	stored.SupplierID = p.SupplierID
	stored.CategoryID = p.CategoryID
	stored.QuantityPerUnit = p.QuantityPerUnit
	stored.UnitPrice = p.UnitPrice
	stored.UnitsInStock = p.UnitsInStock
	stored.UnitsOnOrder = p.UnitsOnOrder
	stored.ReorderLevel = p.ReorderLevel
	stored.Discontinued = p.Discontinued

	if err := s.repo.Save(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
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
