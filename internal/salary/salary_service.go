package salary

import (
	"context"
	"errors"
	"time"

	salaryerrors "dayflow/internal/salary/errors"
	"dayflow/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetCurrent(ctx context.Context, employeeID string) (SalaryResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]SalaryResponse, error)
	Create(ctx context.Context, employeeID string, req CreateSalaryRequest) (SalaryResponse, error)
	Patch(ctx context.Context, employeeID string, req PatchSalaryRequest) (SalaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetCurrent(ctx context.Context, employeeID string) (SalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	latest, err := s.repo.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*latest), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]SalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryerrors.ErrInvalidEmployeeID
	}

	structures, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]SalaryResponse, len(structures))
	for i, st := range structures {
		resp[i] = mapToResponse(st)
	}
	return resp, nil
}

// Create appends a new version effective today; existing versions are
// never touched.
func (s *service) Create(ctx context.Context, employeeID string, req CreateSalaryRequest) (SalaryResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	structure := defaultStructure(eid)
	structure.Wage = req.Wage
	applyOverrides(&structure, PatchSalaryRequest{
		BasicSalaryPercentage: req.BasicSalaryPercentage,
		HRAPercentage:         req.HRAPercentage,
		StandardAllowance:     req.StandardAllowance,
		PerformanceBonus:      req.PerformanceBonus,
		LTA:                   req.LTA,
		FixedAllowance:        req.FixedAllowance,
		PFEmployeePercentage:  req.PFEmployeePercentage,
		PFEmployerPercentage:  req.PFEmployerPercentage,
		ProfessionalTax:       req.ProfessionalTax,
	})

	if err := s.repo.Create(ctx, &structure); err != nil {
		s.logger.Error("create salary structure failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SalaryResponse{}, err
	}

	s.logger.Info("salary structure created",
		zap.String("employee_id", employeeID),
		zap.Int64("wage", structure.Wage),
	)
	return mapToResponse(structure), nil
}

// Patch amends the latest version in place, or starts the first version
// when the employee has none yet.
func (s *service) Patch(ctx context.Context, employeeID string, req PatchSalaryRequest) (SalaryResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	latest, err := s.repo.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, err
		}
		structure := defaultStructure(eid)
		if req.Wage != nil {
			structure.Wage = *req.Wage
		}
		applyOverrides(&structure, req)
		if err := s.repo.Create(ctx, &structure); err != nil {
			return SalaryResponse{}, err
		}
		return mapToResponse(structure), nil
	}

	if req.Wage != nil {
		latest.Wage = *req.Wage
	}
	applyOverrides(latest, req)

	if err := s.repo.Update(ctx, latest); err != nil {
		s.logger.Error("patch salary structure failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SalaryResponse{}, err
	}

	return mapToResponse(*latest), nil
}

func defaultStructure(employeeID uuid.UUID) SalaryStructure {
	return SalaryStructure{
		ID:                    uuid.New(),
		EmployeeID:            employeeID,
		BasicSalaryPercentage: 50,
		HRAPercentage:         20,
		PFEmployeePercentage:  12,
		PFEmployerPercentage:  12,
		ProfessionalTax:       200,
		EffectiveFrom:         time.Now().UTC().Truncate(24 * time.Hour),
	}
}

func applyOverrides(s *SalaryStructure, req PatchSalaryRequest) {
	if req.BasicSalaryPercentage != nil {
		s.BasicSalaryPercentage = *req.BasicSalaryPercentage
	}
	if req.HRAPercentage != nil {
		s.HRAPercentage = *req.HRAPercentage
	}
	if req.StandardAllowance != nil {
		s.StandardAllowance = *req.StandardAllowance
	}
	if req.PerformanceBonus != nil {
		s.PerformanceBonus = *req.PerformanceBonus
	}
	if req.LTA != nil {
		s.LTA = *req.LTA
	}
	if req.FixedAllowance != nil {
		s.FixedAllowance = *req.FixedAllowance
	}
	if req.PFEmployeePercentage != nil {
		s.PFEmployeePercentage = *req.PFEmployeePercentage
	}
	if req.PFEmployerPercentage != nil {
		s.PFEmployerPercentage = *req.PFEmployerPercentage
	}
	if req.ProfessionalTax != nil {
		s.ProfessionalTax = *req.ProfessionalTax
	}
}

func mapToResponse(s SalaryStructure) SalaryResponse {
	return SalaryResponse{
		ID:                    s.ID.String(),
		EmployeeID:            s.EmployeeID.String(),
		Wage:                  s.Wage,
		BasicSalaryPercentage: s.BasicSalaryPercentage,
		HRAPercentage:         s.HRAPercentage,
		StandardAllowance:     s.StandardAllowance,
		PerformanceBonus:      s.PerformanceBonus,
		LTA:                   s.LTA,
		FixedAllowance:        s.FixedAllowance,
		PFEmployeePercentage:  s.PFEmployeePercentage,
		PFEmployerPercentage:  s.PFEmployerPercentage,
		ProfessionalTax:       s.ProfessionalTax,
		EffectiveFrom:         s.EffectiveFrom.Format(dateutil.DateLayout),
	}
}
