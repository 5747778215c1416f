package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Northwind/internal/model"
)

// EmployeeRepository — контракт доступа к сотрудникам для слоя сервиса.
type EmployeeRepository interface {
	// Insert сохраняет нового сотрудника и возвращает присвоенный ключ.
	Insert(ctx context.Context, e *model.Employee) (int64, error)

	// FindByID возвращает сотрудника или ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Employee, error)

	// ListFrom возвращает до limit сотрудников с ключом >= fromID по возрастанию.
	ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Employee, error)

	// Save перезаписывает существующую запись целиком.
	Save(ctx context.Context, e *model.Employee) error

	// Delete удаляет запись, ErrNotFound если её не было.
	Delete(ctx context.Context, id int64) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Insert(ctx context.Context, e *model.Employee) (int64, error) {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return 0, err
	}
	return e.EmployeeID, nil
}

func (r *employeeRepo) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, "employee_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) ListFrom(ctx context.Context, fromID int64, limit int) ([]model.Employee, error) {
	var out []model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id >= ?", fromID).
		Order("employee_id").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) Save(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Employee{}, "employee_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
