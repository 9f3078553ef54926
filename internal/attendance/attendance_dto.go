package attendance

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

type ClockRequest struct {
	Action string `json:"action" binding:"required,oneof=check_in check_out"`
}

type ListFilter struct {
	EmployeeID string
	Date       string
	Month      int
	Year       int
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	WorkHours  float64 `json:"work_hours"`
	ExtraHours float64 `json:"extra_hours"`
}
