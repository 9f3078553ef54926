package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveType struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	IsPaid             bool      `gorm:"not null;default:true"`
	MaxDaysPerYear     int       `gorm:"not null;default:0"`
	RequiresAttachment bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveBalance is one bucket per (employee, type, year). used_days only
// moves on approval; rejected requests never touch it.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_balance_employee_type_year"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_balance_employee_type_year"`
	Year        int       `gorm:"not null;uniqueIndex:idx_balance_employee_type_year"`
	TotalDays   int       `gorm:"not null;default:0"`
	UsedDays    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// LeaveRequest moves pending -> approved|rejected exactly once.
type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`
	LeaveType   *LeaveType

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	// Inclusive calendar day count, weekends included.
	Days int `gorm:"not null"`

	Reason        string  `gorm:"type:text"`
	AttachmentURL *string `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
