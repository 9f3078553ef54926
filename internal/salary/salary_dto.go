package salary

type CreateSalaryRequest struct {
	Wage                  int64    `json:"wage" binding:"required,gt=0"`
	BasicSalaryPercentage *float64 `json:"basic_salary_percentage" binding:"omitempty,gt=0,lte=100"`
	HRAPercentage         *float64 `json:"hra_percentage" binding:"omitempty,gte=0,lte=100"`
	StandardAllowance     *int64   `json:"standard_allowance" binding:"omitempty,gte=0"`
	PerformanceBonus      *int64   `json:"performance_bonus" binding:"omitempty,gte=0"`
	LTA                   *int64   `json:"lta" binding:"omitempty,gte=0"`
	FixedAllowance        *int64   `json:"fixed_allowance" binding:"omitempty,gte=0"`
	PFEmployeePercentage  *float64 `json:"pf_employee_percentage" binding:"omitempty,gte=0,lte=100"`
	PFEmployerPercentage  *float64 `json:"pf_employer_percentage" binding:"omitempty,gte=0,lte=100"`
	ProfessionalTax       *int64   `json:"professional_tax" binding:"omitempty,gte=0"`
}

type PatchSalaryRequest struct {
	Wage                  *int64   `json:"wage" binding:"omitempty,gt=0"`
	BasicSalaryPercentage *float64 `json:"basic_salary_percentage" binding:"omitempty,gt=0,lte=100"`
	HRAPercentage         *float64 `json:"hra_percentage" binding:"omitempty,gte=0,lte=100"`
	StandardAllowance     *int64   `json:"standard_allowance" binding:"omitempty,gte=0"`
	PerformanceBonus      *int64   `json:"performance_bonus" binding:"omitempty,gte=0"`
	LTA                   *int64   `json:"lta" binding:"omitempty,gte=0"`
	FixedAllowance        *int64   `json:"fixed_allowance" binding:"omitempty,gte=0"`
	PFEmployeePercentage  *float64 `json:"pf_employee_percentage" binding:"omitempty,gte=0,lte=100"`
	PFEmployerPercentage  *float64 `json:"pf_employer_percentage" binding:"omitempty,gte=0,lte=100"`
	ProfessionalTax       *int64   `json:"professional_tax" binding:"omitempty,gte=0"`
}

type SalaryResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	Wage                  int64   `json:"wage"`
	BasicSalaryPercentage float64 `json:"basic_salary_percentage"`
	HRAPercentage         float64 `json:"hra_percentage"`
	StandardAllowance     int64   `json:"standard_allowance"`
	PerformanceBonus      int64   `json:"performance_bonus"`
	LTA                   int64   `json:"lta"`
	FixedAllowance        int64   `json:"fixed_allowance"`
	PFEmployeePercentage  float64 `json:"pf_employee_percentage"`
	PFEmployerPercentage  float64 `json:"pf_employer_percentage"`
	ProfessionalTax       int64   `json:"professional_tax"`
	EffectiveFrom         string  `json:"effective_from"`
}
