package events

import "time"

const LeaveReviewedTopic = "hr.leave.reviewed.v1"

type LeaveReviewedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	Days       int       `json:"days"`
	ReviewedBy string    `json:"reviewed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
