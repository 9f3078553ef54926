package employee

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	employeeerrors "dayflow/internal/employee/errors"
	"dayflow/internal/events"
	"dayflow/internal/messaging/kafka"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/counter"
	"dayflow/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789@#$%"

// LeaveBalanceSeeder creates the per-leave-type balance rows for a new hire.
// Implemented by the leave service; declared here to keep the dependency
// pointing outward.
type LeaveBalanceSeeder interface {
	SeedYear(ctx context.Context, employeeID string, year int) error
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	seeder  LeaveBalanceSeeder
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	counterRepo counter.Repository,
	seeder LeaveBalanceSeeder,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		seeder:  seeder,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse(dateutil.DateLayout, req.JoiningDate)
	if err != nil {
		return CreateEmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	taken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}
	if taken {
		return CreateEmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	joiningYear := joiningDate.Year()
	serial, err := s.counter.GetNextValue(ctx, fmt.Sprintf("login_id:%d", joiningYear))
	if err != nil {
		s.logger.Error("create employee generate serial failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	loginID := generateLoginID(companyCode(), req.FirstName, req.LastName, joiningYear, serial)
	tempPassword, err := generateRandomPassword(12)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}

	e := &Employee{
		ID:                 uuid.New(),
		LoginID:            loginID,
		Email:              req.Email,
		PasswordHash:       string(hash),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Role:               role,
		Department:         req.Department,
		Designation:        req.Designation,
		Phone:              req.Phone,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		PostalCode:         req.PostalCode,
		JoiningDate:        joiningDate,
		MustChangePassword: true,
		IsActive:           true,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return CreateEmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: e.ID.String(),
			LoginID:    e.LoginID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return CreateEmployeeResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return CreateEmployeeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return CreateEmployeeResponse{}, err
	}

	// Balance seeding mirrors hire-time provisioning; a failure here leaves
	// the employee created and is only logged.
	if s.seeder != nil {
		if err := s.seeder.SeedYear(ctx, e.ID.String(), time.Now().UTC().Year()); err != nil {
			s.logger.Error("seed leave balances failed",
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("login_id", e.LoginID),
	)

	return CreateEmployeeResponse{
		Employee: mapToResponse(*e),
		Credentials: Credentials{
			LoginID:      loginID,
			TempPassword: tempPassword,
		},
	}, nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	caller := contextutil.GetCaller(ctx)
	if !IsAdminOrHR(caller.Role) && caller.ID != id {
		return EmployeeResponse{}, employeeerrors.ErrProfileForbidden
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	caller := contextutil.GetCaller(ctx)

	if !IsAdminOrHR(caller.Role) {
		if caller.ID != id {
			return EmployeeResponse{}, employeeerrors.ErrProfileForbidden
		}
		if req.Role != nil || req.IsActive != nil {
			return EmployeeResponse{}, employeeerrors.ErrRestrictedFields
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	applyProfilePatch(e, req)

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func applyProfilePatch(e *Employee, req UpdateEmployeeRequest) {
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Department != nil {
		e.Department = req.Department
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.Address != nil {
		e.Address = req.Address
	}
	if req.City != nil {
		e.City = req.City
	}
	if req.State != nil {
		e.State = req.State
	}
	if req.Country != nil {
		e.Country = req.Country
	}
	if req.PostalCode != nil {
		e.PostalCode = req.PostalCode
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}

func companyCode() string {
	if code := os.Getenv("COMPANY_CODE"); code != "" {
		return code
	}
	return "DF"
}

// generateLoginID builds IDs like DFJSM20260042: company code, first initial
// plus two last-name letters, joining year, zero-padded serial.
func generateLoginID(companyCode, firstName, lastName string, joiningYear int, serial int64) string {
	initials := strings.ToUpper(firstName[:1] + substring(lastName, 2))
	return fmt.Sprintf("%s%s%d%04d", companyCode, initials, joiningYear, serial)
}

func substring(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func generateRandomPassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordCharset)))
	var sb strings.Builder
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(passwordCharset[idx.Int64()])
	}
	return sb.String(), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID.String(),
		LoginID:     e.LoginID,
		Email:       e.Email,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Role:        e.Role,
		Department:  e.Department,
		Designation: e.Designation,
		Phone:       e.Phone,
		Address:     e.Address,
		City:        e.City,
		State:       e.State,
		Country:     e.Country,
		PostalCode:  e.PostalCode,
		JoiningDate: e.JoiningDate.Format(dateutil.DateLayout),
		IsActive:    e.IsActive,
	}
}
