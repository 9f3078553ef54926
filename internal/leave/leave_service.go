package leave

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/events"
	leaveerrors "dayflow/internal/leave/errors"
	"dayflow/internal/messaging/kafka"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, requestID string, req ReviewLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// SeedYear satisfies employee.LeaveBalanceSeeder for new hires.
	SeedYear(ctx context.Context, employeeID string, year int) error
}

type service struct {
	db             *gorm.DB
	repo           Repository
	attendanceRepo attendance.Repository
	outbox         kafka.OutboxRepository
	sf             *singleflight.Group
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		attendanceRepo: attendanceRepo,
		outbox:         outboxRepo,
		sf:             &singleflight.Group{},
		logger:         l,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// NewServiceWithClock is for tests that need a fixed time.
func NewServiceWithClock(
	db *gorm.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	outboxRepo kafka.OutboxRepository,
	now func() time.Time,
) Service {
	return &service{
		db:             db,
		repo:           repo,
		attendanceRepo: attendanceRepo,
		outbox:         outboxRepo,
		sf:             &singleflight.Group{},
		logger:         zap.L().Named("leave.service"),
		now:            now,
	}
}

// balanceYear is the single place deciding which yearly bucket a settlement
// writes to: the year at processing time, not the year of the leave dates.
// A December request reviewed in January lands in the new year's bucket.
func balanceYear(now time.Time) int {
	return now.Year()
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	caller := contextutil.GetCaller(ctx)
	employeeID, err := uuid.Parse(caller.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	start, err := time.Parse(dateutil.DateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse(dateutil.DateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	days := dateutil.InclusiveDays(start, end)

	leaveType, err := s.repo.FindTypeByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveResponse{}, err
	}

	if leaveType.RequiresAttachment && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return LeaveResponse{}, leaveerrors.ErrAttachmentRequired
	}

	// Advisory balance check against the current year's bucket. Approval
	// does not re-check; this is the only gate.
	balance, err := s.repo.FindBalance(ctx, caller.ID, req.LeaveTypeID, balanceYear(s.now()))
	if err == nil && balance.TotalDays-balance.UsedDays < days {
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveResponse{}, err
	}

	request := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveType.ID,
		LeaveType:     leaveType,
		StartDate:     start,
		EndDate:       end,
		Days:          days,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        StatusPending,
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("create leave request failed",
			zap.String("employee_id", caller.ID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("request_id", request.ID.String()),
		zap.String("employee_id", caller.ID),
		zap.Int("days", days),
	)
	return mapToResponse(*request), nil
}

// Review settles a pending request. On approval it debits the year bucket
// and backfills attendance for every calendar day of the range; all writes
// share one transaction.
func (s *service) Review(ctx context.Context, requestID string, req ReviewLeaveRequest) (LeaveResponse, error) {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	caller := contextutil.GetCaller(ctx)
	reviewerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	request, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if request.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyProcessed
	}

	now := s.now()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request.Status = req.Status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	if err := qtx.UpdateRequest(ctx, request); err != nil {
		s.logger.Error("review persist failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if req.Status == StatusApproved {
		if err := s.settleApproval(ctx, qtx, tx, request, now); err != nil {
			return LeaveResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.LeaveReviewedEvent{
			EventType:  "leave.reviewed",
			RequestID:  request.ID.String(),
			EmployeeID: request.EmployeeID.String(),
			Status:     request.Status,
			Days:       request.Days,
			ReviewedBy: caller.ID,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "leave_request",
			AggregateID:   request.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveReviewedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request reviewed",
		zap.String("request_id", requestID),
		zap.String("status", request.Status),
		zap.String("reviewed_by", caller.ID),
	)
	return mapToResponse(*request), nil
}

// settleApproval runs the approval side effects inside the caller's
// transaction: debit the balance bucket and mark every day of the range as
// leave in attendance.
func (s *service) settleApproval(ctx context.Context, qtx Repository, tx *gorm.DB, request *LeaveRequest, now time.Time) error {
	year := balanceYear(now)

	balance, err := qtx.FindBalance(ctx, request.EmployeeID.String(), request.LeaveTypeID.String(), year)
	switch {
	case err == nil:
		// No clamp against total_days; the gate ran at creation time.
		balance.UsedDays += request.Days
		if err := qtx.UpdateBalance(ctx, balance); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Warn("no balance bucket for approved leave, skipping debit",
			zap.String("request_id", request.ID.String()),
			zap.Int("year", year),
		)
	default:
		return err
	}

	attTx := s.attendanceRepo.WithTx(tx)
	return dateutil.EachDay(request.StartDate, request.EndDate, func(day time.Time) error {
		existing, err := attTx.FindByEmployeeAndDate(ctx, request.EmployeeID.String(), day)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return attTx.Create(ctx, &attendance.Attendance{
				ID:         uuid.New(),
				EmployeeID: request.EmployeeID,
				Date:       day,
				Status:     attendance.StatusLeave,
			})
		}
		existing.Status = attendance.StatusLeave
		return attTx.Update(ctx, existing)
	})
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	caller := contextutil.GetCaller(ctx)
	if !employee.IsAdminOrHR(caller.Role) {
		filter.EmployeeID = caller.ID
	}

	requests, err := s.repo.FindRequests(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	// Every leave form loads this list; concurrent requests share one query.
	v, err, _ := s.sf.Do("leave_types", func() (any, error) {
		return s.repo.FindAllTypes(ctx)
	})
	if err != nil {
		return nil, err
	}
	types := v.([]LeaveType)
	resp := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		resp[i] = LeaveTypeResponse{
			ID:                 t.ID.String(),
			Name:               t.Name,
			IsPaid:             t.IsPaid,
			MaxDaysPerYear:     t.MaxDaysPerYear,
			RequiresAttachment: t.RequiresAttachment,
		}
	}
	return resp, nil
}

func (s *service) GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	caller := contextutil.GetCaller(ctx)
	if !employee.IsAdminOrHR(caller.Role) {
		employeeID = caller.ID
	}
	if year == 0 {
		year = balanceYear(s.now())
	}

	balances, err := s.repo.FindBalances(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}
	resp := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = BalanceResponse{
			ID:            b.ID.String(),
			EmployeeID:    b.EmployeeID.String(),
			LeaveTypeID:   b.LeaveTypeID.String(),
			Year:          b.Year,
			TotalDays:     b.TotalDays,
			UsedDays:      b.UsedDays,
			RemainingDays: b.TotalDays - b.UsedDays,
		}
	}
	return resp, nil
}

// SeedYear creates one zero-used balance per leave type for a new hire.
func (s *service) SeedYear(ctx context.Context, employeeID string, year int) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}

	types, err := s.repo.FindAllTypes(ctx)
	if err != nil {
		return err
	}

	for _, t := range types {
		if _, err := s.repo.FindBalance(ctx, employeeID, t.ID.String(), year); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		b := &LeaveBalance{
			ID:          uuid.New(),
			EmployeeID:  eid,
			LeaveTypeID: t.ID,
			Year:        year,
			TotalDays:   t.MaxDaysPerYear,
		}
		if err := s.repo.CreateBalance(ctx, b); err != nil {
			return err
		}
	}

	s.logger.Info("leave balances seeded",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("types", len(types)),
	)
	return nil
}

func mapToResponse(r LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            r.ID.String(),
		EmployeeID:    r.EmployeeID.String(),
		LeaveTypeID:   r.LeaveTypeID.String(),
		StartDate:     r.StartDate.Format(dateutil.DateLayout),
		EndDate:       r.EndDate.Format(dateutil.DateLayout),
		Days:          r.Days,
		Reason:        r.Reason,
		AttachmentURL: r.AttachmentURL,
		Status:        r.Status,
	}
	if r.LeaveType != nil {
		resp.LeaveTypeName = r.LeaveType.Name
	}
	if r.ReviewedBy != nil {
		v := r.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if r.ReviewedAt != nil {
		v := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}
