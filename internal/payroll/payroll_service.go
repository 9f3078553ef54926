package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/events"
	"dayflow/internal/messaging/kafka"
	payrollerrors "dayflow/internal/payroll/errors"
	"dayflow/internal/salary"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	List(ctx context.Context, filter ListFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
}

type service struct {
	db             *gorm.DB
	repo           Repository
	employeeRepo   employee.Repository
	salaryRepo     salary.Repository
	attendanceRepo attendance.Repository
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	salaryRepo salary.Repository,
	attendanceRepo attendance.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		outbox:         outboxRepo,
		logger:         l,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Generate runs the batch for one period. Employees are processed
// independently: an existing payslip or a missing salary structure skips
// the employee without failing the batch, and each generated payslip
// commits in its own transaction.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.FindActive(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	if len(employees) == 0 {
		return GeneratePayrollResponse{}, payrollerrors.ErrNoActiveEmployees
	}

	from, to := dateutil.MonthRange(req.Year, req.Month)
	workingDays := dateutil.DaysInMonth(req.Year, req.Month)

	resp := GeneratePayrollResponse{Payroll: []PayrollResponse{}}
	for _, e := range employees {
		payslip, generated, err := s.generateForEmployee(ctx, e, req.Month, req.Year, from, to, workingDays)
		if err != nil {
			// One employee's failure never aborts the batch.
			s.logger.Error("payroll generation skipped employee",
				zap.String("employee_id", e.ID.String()),
				zap.Int("month", req.Month),
				zap.Int("year", req.Year),
				zap.Error(err),
			)
			continue
		}
		if !generated {
			continue
		}
		resp.Payroll = append(resp.Payroll, payslip)
		resp.Generated++
	}

	s.logger.Info("payroll generation finished",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("employees", len(employees)),
		zap.Int("generated", resp.Generated),
	)
	return resp, nil
}

func (s *service) generateForEmployee(
	ctx context.Context,
	e employee.Employee,
	month, year int,
	from, to time.Time,
	workingDays int,
) (PayrollResponse, bool, error) {
	exists, err := s.repo.ExistsForPeriod(ctx, e.ID.String(), month, year)
	if err != nil {
		return PayrollResponse{}, false, err
	}
	if exists {
		return PayrollResponse{}, false, nil
	}

	structure, err := s.salaryRepo.FindLatestByEmployee(ctx, e.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, false, nil
		}
		return PayrollResponse{}, false, err
	}

	records, err := s.attendanceRepo.FindByEmployeeInRange(ctx, e.ID.String(), from, to)
	if err != nil {
		return PayrollResponse{}, false, err
	}

	daysPresent, paidLeaveDays := 0, 0
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			daysPresent++
		case attendance.StatusLeave:
			paidLeaveDays++
		}
	}
	unpaidLeaveDays := workingDays - daysPresent - paidLeaveDays
	if unpaidLeaveDays < 0 {
		unpaidLeaveDays = 0
	}

	comp := computePay(*structure, daysPresent, paidLeaveDays, workingDays)

	p := &Payroll{
		ID:                uuid.New(),
		EmployeeID:        e.ID,
		Month:             month,
		Year:              year,
		WorkingDays:       workingDays,
		DaysPresent:       daysPresent,
		PaidLeaveDays:     paidLeaveDays,
		UnpaidLeaveDays:   unpaidLeaveDays,
		BasicSalary:       comp.BasicSalary,
		HRA:               comp.HRA,
		StandardAllowance: comp.StandardAllowance,
		PerformanceBonus:  comp.PerformanceBonus,
		LTA:               comp.LTA,
		FixedAllowance:    comp.FixedAllowance,
		GrossSalary:       comp.GrossSalary,
		PFEmployee:        comp.PFEmployee,
		PFEmployer:        comp.PFEmployer,
		ProfessionalTax:   comp.ProfessionalTax,
		TotalDeductions:   comp.TotalDeductions,
		NetSalary:         comp.NetSalary,
		Status:            StatusDraft,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollResponse{}, false, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		return PayrollResponse{}, false, err
	}

	if s.outbox != nil {
		event := events.PayrollGeneratedEvent{
			EventType:  "payroll.generated",
			PayrollID:  p.ID.String(),
			EmployeeID: e.ID.String(),
			Month:      month,
			Year:       year,
			NetSalary:  p.NetSalary,
			OccurredAt: s.now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, false, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "payroll",
			AggregateID:   p.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return PayrollResponse{}, false, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return PayrollResponse{}, false, err
	}

	return mapToResponse(*p), true, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                p.ID.String(),
		EmployeeID:        p.EmployeeID.String(),
		Month:             p.Month,
		Year:              p.Year,
		WorkingDays:       p.WorkingDays,
		DaysPresent:       p.DaysPresent,
		PaidLeaveDays:     p.PaidLeaveDays,
		UnpaidLeaveDays:   p.UnpaidLeaveDays,
		BasicSalary:       p.BasicSalary,
		HRA:               p.HRA,
		StandardAllowance: p.StandardAllowance,
		PerformanceBonus:  p.PerformanceBonus,
		LTA:               p.LTA,
		FixedAllowance:    p.FixedAllowance,
		GrossSalary:       p.GrossSalary,
		PFEmployee:        p.PFEmployee,
		PFEmployer:        p.PFEmployer,
		ProfessionalTax:   p.ProfessionalTax,
		TotalDeductions:   p.TotalDeductions,
		NetSalary:         p.NetSalary,
		Status:            p.Status,
	}
}
