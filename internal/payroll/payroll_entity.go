package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

// Payroll is generated at most once per (employee, month, year). All
// monetary fields are derived at generation time and stored as whole
// currency units; the generator never overwrites an existing row.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:idx_payroll_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:idx_payroll_employee_period"`

	WorkingDays     int `gorm:"not null"`
	DaysPresent     int `gorm:"not null"`
	PaidLeaveDays   int `gorm:"not null"`
	UnpaidLeaveDays int `gorm:"not null"`

	BasicSalary       int64 `gorm:"not null"`
	HRA               int64 `gorm:"not null"`
	StandardAllowance int64 `gorm:"not null"`
	PerformanceBonus  int64 `gorm:"not null"`
	LTA               int64 `gorm:"not null"`
	FixedAllowance    int64 `gorm:"not null"`
	GrossSalary       int64 `gorm:"not null"`
	PFEmployee        int64 `gorm:"not null"`
	PFEmployer        int64 `gorm:"not null"`
	ProfessionalTax   int64 `gorm:"not null"`
	TotalDeductions   int64 `gorm:"not null"`
	NetSalary         int64 `gorm:"not null"`

	Status      string `gorm:"type:varchar(20);not null;default:'draft'"`
	ProcessedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string {
	return "payrolls"
}
