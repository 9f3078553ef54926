package employee

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, includeInactive bool) ([]Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByLoginOrEmail(ctx context.Context, login string) (*Employee, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, e *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	var employees []Employee
	db := r.db.WithContext(ctx).Order("first_name")
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Find(&employees).Error
	return employees, err
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	return r.FindAll(ctx, false)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByLoginOrEmail(ctx context.Context, login string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("login_id = ? OR email = ?", login, login).
		First(&e).Error
	return &e, err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}
