package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Northwind/internal/model"
)

// ProductRepository — контракт доступа к товарам.
type ProductRepository interface {
	Insert(ctx context.Context, p *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Product, error)

	// ListByCategory возвращает товары категории по возрастанию ключа.
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)

	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Insert(ctx context.Context, p *model.Product) (int64, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, err
	}
	return p.ProductID, nil
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Product, error) {
	var out []model.Product
	err := r.db.WithContext(ctx).
		Where("product_id >= ?", fromID).
		Order("product_id").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	var out []model.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("product_id").
		Find(&out).Error
	return out, err
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
