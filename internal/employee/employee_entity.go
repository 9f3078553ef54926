package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Employee doubles as the login principal; password_hash lives here.
// Rows are soft-deactivated via is_active, never deleted.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LoginID      string    `gorm:"type:varchar(24);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	FirstName    string    `gorm:"type:varchar(80);not null"`
	LastName     string    `gorm:"type:varchar(80);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employee'"`

	Department  *string `gorm:"type:varchar(120)"`
	Designation *string `gorm:"type:varchar(120)"`
	Phone       *string `gorm:"type:varchar(30)"`
	Address     *string `gorm:"type:text"`
	City        *string `gorm:"type:varchar(80)"`
	State       *string `gorm:"type:varchar(80)"`
	Country     *string `gorm:"type:varchar(80)"`
	PostalCode  *string `gorm:"type:varchar(20)"`

	JoiningDate        time.Time `gorm:"type:date;not null"`
	MustChangePassword bool      `gorm:"not null;default:true"`
	IsActive           bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func IsAdminOrHR(role string) bool {
	return role == RoleAdmin || role == RoleHR
}
