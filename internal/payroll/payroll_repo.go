package payroll

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Payroll) error
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payroll, error) {
	var payrolls []Payroll
	db := r.db.WithContext(ctx).Order("year DESC, month DESC")
	if filter.Month > 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year > 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	err := db.Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}
