package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Northwind/internal/model"
)

// CategoryRepository — контракт доступа к категориям. Картинка живёт в той же
// строке, отдельных методов для неё нет: сервис читает запись, меняет поле и
// сохраняет через Save.
type CategoryRepository interface {
	Insert(ctx context.Context, c *model.Category) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Category, error)
	Save(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Insert(ctx context.Context, c *model.Category) (int64, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, err
	}
	return c.CategoryID, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "category_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Category, error) {
	var out []model.Category
	err := r.db.WithContext(ctx).
		Where("category_id >= ?", fromID).
		Order("category_id").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *categoryRepo) Save(ctx context.Context, c *model.Category) error {
	// gorm.Save пишет все поля, включая обнулённую картинку.
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Category{}, "category_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
