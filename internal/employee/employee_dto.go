package employee

type CreateEmployeeRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	Role        string  `json:"role" binding:"omitempty,oneof=admin hr employee"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postal_code"`
}

type UpdateEmployeeRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postal_code"`

	// Restricted to admin/HR callers.
	Role     *string `json:"role" binding:"omitempty,oneof=admin hr employee"`
	IsActive *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	LoginID     string  `json:"login_id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     *string `json:"country,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	JoiningDate string  `json:"joining_date"`
	IsActive    bool    `json:"is_active"`
}

type Credentials struct {
	LoginID      string `json:"login_id"`
	TempPassword string `json:"temp_password"`
}

type CreateEmployeeResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	Credentials Credentials      `json:"credentials"`
}
