package payroll

type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}

type ListFilter struct {
	Month      int
	Year       int
	EmployeeID string
}

type PayrollResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	WorkingDays     int `json:"working_days"`
	DaysPresent     int `json:"days_present"`
	PaidLeaveDays   int `json:"paid_leave_days"`
	UnpaidLeaveDays int `json:"unpaid_leave_days"`

	BasicSalary       int64 `json:"basic_salary"`
	HRA               int64 `json:"hra"`
	StandardAllowance int64 `json:"standard_allowance"`
	PerformanceBonus  int64 `json:"performance_bonus"`
	LTA               int64 `json:"lta"`
	FixedAllowance    int64 `json:"fixed_allowance"`
	GrossSalary       int64 `json:"gross_salary"`
	PFEmployee        int64 `json:"pf_employee"`
	PFEmployer        int64 `json:"pf_employer"`
	ProfessionalTax   int64 `json:"professional_tax"`
	TotalDeductions   int64 `json:"total_deductions"`
	NetSalary         int64 `json:"net_salary"`

	Status string `json:"status"`
}

type GeneratePayrollResponse struct {
	Generated int               `json:"generated"`
	Payroll   []PayrollResponse `json:"payroll"`
}
