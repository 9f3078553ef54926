package salary

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *SalaryStructure) error
	Update(ctx context.Context, s *SalaryStructure) error
	FindLatestByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
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

func (r *repository) Create(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindLatestByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC, created_at DESC").
		First(&s).Error
	return &s, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC, created_at DESC").
		Find(&structures).Error
	return structures, err
}
