package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-attendo/internal/auth/errors"
	"go-attendo/internal/auth/token"
	"go-attendo/internal/employee"
	"go-attendo/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenManager is satisfied by *token.Manager.
type TokenManager interface {
	Issue(employeeID, role, tokenType string) (string, time.Time, error)
	Parse(tokenString, tokenType string) (*token.Claims, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TokenPair, AuthResponse, error)
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, employeeID string) (AuthResponse, error)
}

type ServiceConfig struct {
	Employees          employee.Service
	EmployeeRepo       employee.Repository
	Tokens             TokenManager
	AllowManagerSignup bool
}

type service struct {
	employees          employee.Service
	employeeRepo       employee.Repository
	tokens             TokenManager
	allowManagerSignup bool
	logger             *zap.Logger
}

func NewService(cfg ServiceConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employees:          cfg.Employees,
		employeeRepo:       cfg.EmployeeRepo,
		tokens:             cfg.Tokens,
		allowManagerSignup: cfg.AllowManagerSignup,
		logger:             l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (TokenPair, AuthResponse, error) {
	if req.Role == employee.RoleManager && !s.allowManagerSignup {
		s.logger.Warn("manager self-registration refused",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("email", req.Email),
		)
		return TokenPair{}, AuthResponse{}, autherrors.ErrManagerSignupDisabled
	}

	created, err := s.employees.Create(ctx, employee.CreateEmployeeRequest{
		FullName:     req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
	})
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	resp := AuthResponse{
		ID:           created.ID,
		Name:         created.Name,
		Email:        created.Email,
		Role:         created.Role,
		EmployeeCode: created.EmployeeCode,
		Department:   created.Department,
	}

	pair, err := s.issuePair(resp.ID, resp.Role)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, resp, nil
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	emp, err := s.employeeRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.String("request_id", rid), zap.Error(err))
			return TokenPair{}, AuthResponse{}, err
		}
		s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("reason", "unknown email"))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID.String()),
			zap.String("reason", "password mismatch"),
		)
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(emp.ID.String(), emp.Role)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	s.logger.Info("login succeeded", zap.String("request_id", rid), zap.String("employee_id", emp.ID.String()))
	return pair, toAuthResponse(*emp), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		if errors.Is(err, autherrors.ErrTokenExpired) {
			return TokenPair{}, AuthResponse{}, err
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	emp, err := s.findEmployee(ctx, claims.EmployeeID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	// role is re-read so a changed role takes effect on the next refresh
	pair, err := s.issuePair(emp.ID.String(), emp.Role)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, toAuthResponse(*emp), nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (AuthResponse, error) {
	emp, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return AuthResponse{}, err
	}
	return toAuthResponse(*emp), nil
}

// findEmployee resolves the employee behind a token. A token for a removed
// employee is treated as invalid.
func (s *service) findEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidToken
		}
		s.logger.Error("load token employee failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return emp, nil
}

func (s *service) issuePair(employeeID, role string) (TokenPair, error) {
	access, accessExp, err := s.tokens.Issue(employeeID, role, token.TypeAccess)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, refreshExp, err := s.tokens.Issue(employeeID, role, token.TypeRefresh)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func toAuthResponse(e employee.Employee) AuthResponse {
	return AuthResponse{
		ID:           e.ID.String(),
		Name:         e.FullName,
		Email:        e.Email,
		Role:         e.Role,
		EmployeeCode: e.EmployeeCode,
		Department:   e.Department,
	}
}
