package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusHalfDay = "half_day"
)

// Attendance holds one row per employee per calendar day. Rows with status
// "leave" are written by leave approval, not by check-in.
type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `gorm:"type:varchar(20);not null;default:'present'"`

	CheckIn  *time.Time
	CheckOut *time.Time

	WorkHours  float64 `gorm:"not null;default:0"`
	ExtraHours float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
