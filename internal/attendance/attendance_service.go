package attendance

import (
	"context"
	"errors"
	"math"
	"time"

	attendanceerrors "dayflow/internal/attendance/errors"
	"dayflow/internal/employee"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const fullDayHours = 8.0

type Service interface {
	Clock(ctx context.Context, employeeID, action string) (AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l, now: func() time.Time { return time.Now().UTC() }}
}

// NewServiceWithClock is for tests that need a fixed time.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, logger: zap.L().Named("attendance.service"), now: now}
}

func (s *service) Clock(ctx context.Context, employeeID, action string) (AttendanceResponse, error) {
	switch action {
	case ActionCheckIn:
		return s.checkIn(ctx, employeeID)
	case ActionCheckOut:
		return s.checkOut(ctx, employeeID)
	default:
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAction
	}
}

func (s *service) checkIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	now := s.now()
	today := truncateToDay(now)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	if err == nil {
		if existing.Status == StatusLeave {
			return AttendanceResponse{}, attendanceerrors.ErrOnLeaveToday
		}
		if existing.CheckIn != nil {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		existing.Status = StatusPresent
		existing.CheckIn = &now
		if err := s.repo.Update(ctx, existing); err != nil {
			return AttendanceResponse{}, err
		}
		return mapToResponse(*existing), nil
	}

	record := &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		Date:       today,
		Status:     StatusPresent,
		CheckIn:    &now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("check-in persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked in", zap.String("employee_id", employeeID))
	return mapToResponse(*record), nil
}

func (s *service) checkOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	now := s.now()
	today := truncateToDay(now)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}
	if existing.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	existing.CheckOut = &now
	worked := now.Sub(*existing.CheckIn).Hours()
	existing.WorkHours = round2(worked)
	existing.ExtraHours = round2(math.Max(0, worked-fullDayHours))

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("check-out persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked out",
		zap.String("employee_id", employeeID),
		zap.Float64("work_hours", existing.WorkHours),
	)
	return mapToResponse(*existing), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error) {
	caller := contextutil.GetCaller(ctx)

	employeeID := filter.EmployeeID
	// Regular employees only ever see their own records.
	if !employee.IsAdminOrHR(caller.Role) {
		employeeID = caller.ID
	}

	from, to, err := resolveRange(filter, s.now())
	if err != nil {
		return nil, err
	}

	var records []Attendance
	if employeeID != "" {
		records, err = s.repo.FindByEmployeeInRange(ctx, employeeID, from, to)
	} else {
		records, err = s.repo.FindInRange(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func resolveRange(filter ListFilter, now time.Time) (time.Time, time.Time, error) {
	if filter.Date != "" {
		day, err := time.Parse(dateutil.DateLayout, filter.Date)
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidFilter
		}
		return day, day, nil
	}

	month := filter.Month
	year := filter.Year
	if month == 0 && year == 0 {
		month = int(now.Month())
		year = now.Year()
	}
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidFilter
	}
	from, to := dateutil.MonthRange(year, month)
	return from, to, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format(dateutil.DateLayout),
		Status:     a.Status,
		WorkHours:  a.WorkHours,
		ExtraHours: a.ExtraHours,
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
