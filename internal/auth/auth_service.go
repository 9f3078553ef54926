package auth

import (
	"context"
	"os"
	"time"

	autherrors "dayflow/internal/auth/errors"
	"dayflow/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

type Service interface {
	Login(ctx context.Context, login, password string) (LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	GetMe(ctx context.Context, userID string) (AuthUser, error)
}

type service struct {
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employeeRepo: employeeRepo, logger: l}
}

func (s *service) Login(ctx context.Context, login, password string) (LoginResponse, error) {
	e, err := s.employeeRepo.FindByLoginOrEmail(ctx, login)
	if err != nil {
		// Not-found and lookup failures look identical to the caller.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", zap.String("login", login))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !e.IsActive {
		return LoginResponse{}, autherrors.ErrAccountDisabled
	}

	token, err := generateToken(e.ID.String(), e.Role, tokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", e.ID.String()),
		zap.String("role", e.Role),
	)

	return LoginResponse{
		Token: token,
		User:  mapToAuthUser(e),
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	e, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	e.PasswordHash = string(hash)
	e.MustChangePassword = false

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		s.logger.Error("change password persist failed",
			zap.String("employee_id", userID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("password changed", zap.String("employee_id", userID))
	return nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthUser, error) {
	e, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return AuthUser{}, autherrors.ErrUserNotFound
	}
	return mapToAuthUser(e), nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthUser(e *employee.Employee) AuthUser {
	return AuthUser{
		ID:                 e.ID.String(),
		LoginID:            e.LoginID,
		Email:              e.Email,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Role:               e.Role,
		MustChangePassword: e.MustChangePassword,
	}
}
