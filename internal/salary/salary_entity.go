package salary

import (
	"time"

	"github.com/google/uuid"
)

// SalaryStructure is versioned: writes append a new row with a fresh
// effective_from and reads pick the latest one, so past payrolls stay
// explainable.
type SalaryStructure struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_employee_effective"`

	// Monthly wage in whole currency units.
	Wage int64 `gorm:"not null"`

	BasicSalaryPercentage float64 `gorm:"not null;default:50"`
	HRAPercentage         float64 `gorm:"not null;default:20"`
	StandardAllowance     int64   `gorm:"not null;default:0"`
	PerformanceBonus      int64   `gorm:"not null;default:0"`
	LTA                   int64   `gorm:"not null;default:0"`
	FixedAllowance        int64   `gorm:"not null;default:0"`

	PFEmployeePercentage float64 `gorm:"not null;default:12"`
	PFEmployerPercentage float64 `gorm:"not null;default:12"`
	ProfessionalTax      int64   `gorm:"not null;default:200"`

	EffectiveFrom time.Time `gorm:"type:date;not null;index:idx_salary_employee_effective"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}
