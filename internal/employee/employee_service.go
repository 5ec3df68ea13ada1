package employee

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"go-attendo/internal/attendance"
	"go-attendo/internal/bootstrap"
	employeeerrors "go-attendo/internal/employee/errors"
	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"
	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"
	"go-attendo/internal/shared/counter"
	"go-attendo/internal/shared/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const employeeCodeFormat = "EMP%03d"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, int, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceConfig struct {
	Counter    counter.Repository
	Attendance attendance.Repository
	Outbox     kafka.OutboxRepository
	Redis      *redis.Client
	Audit      bootstrap.AuditLogger
	Location   *time.Location
	Now        func() time.Time
}

type service struct {
	db         *sql.DB
	repo       Repository
	counter    counter.Repository
	attendance attendance.Repository
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	audit      bootstrap.AuditLogger
	loc        *time.Location
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cfg ServiceConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &service{
		db:         db,
		repo:       repo,
		counter:    cfg.Counter,
		attendance: cfg.Attendance,
		outbox:     cfg.Outbox,
		rdb:        cfg.Redis,
		audit:      cfg.Audit,
		loc:        loc,
		now:        now,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := normalizeEmail(req.Email)

	s.logger.Debug("create employee request",
		zap.String("request_id", rid),
		zap.String("email", email),
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	code := strings.TrimSpace(req.EmployeeCode)
	if code == "" {
		next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.EmployeeCode)
		if err != nil {
			s.logger.Error("generate employee code failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf(employeeCodeFormat, next)
	}

	emp := &Employee{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeCode: code,
		Department:   strings.TrimSpace(req.Department),
	}

	if err := s.repo.WithTx(tx).Create(ctx, emp); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		} else {
			s.logger.Warn("create employee rejected", zap.String("request_id", rid), zap.Error(mapped))
		}
		return EmployeeResponse{}, mapped
	}

	if s.outbox != nil {
		payload := events.EmployeeRegisteredEvent{
			EventType:    events.EmployeeRegistered,
			EmployeeID:   emp.ID.String(),
			EmployeeCode: emp.EmployeeCode,
			Role:         emp.Role,
			Department:   emp.Department,
			OccurredAt:   s.now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, emp.ID.String(), events.EmployeeRegistered, payload); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidate(ctx, cachekey.DepartmentHeadcount)

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("employee_code", emp.EmployeeCode),
	)
	return toResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, int, error) {
	rid := contextutil.GetRequestID(ctx)

	rows, err := s.repo.FindAllByRole(ctx, RoleEmployee)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("request_id", rid), zap.Error(err))
		return nil, 0, err
	}

	rows = filterEmployees(rows, q.Q, q.Department)
	sortEmployees(rows, q.SortBy, q.SortDir)

	total := len(rows)
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	start, end := response.Paginate(total, page, size)

	out := make([]EmployeeResponse, 0, end-start)
	for _, e := range rows[start:end] {
		out = append(out, toResponse(e))
	}
	return out, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("get employee failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
		return EmployeeResponse{}, mapped
	}
	return toResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetUserID(ctx)

	empID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, empID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if emp.IsManager() {
		s.logger.Warn("refusing to delete manager",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.String("actor_id", actor),
		)
		return employeeerrors.ErrCannotDeleteManager
	}

	var removed int64
	if s.attendance != nil {
		removed, err = s.attendance.WithTx(tx).DeleteByEmployee(ctx, empID)
		if err != nil {
			s.logger.Error("delete employee attendance failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
	}

	if err := qtx.Delete(ctx, empID); err != nil {
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		payload := events.EmployeeDeletedEvent{
			EventType:         events.EmployeeDeleted,
			EmployeeID:        emp.ID.String(),
			EmployeeCode:      emp.EmployeeCode,
			AttendanceRemoved: removed,
			DeletedBy:         actor,
			OccurredAt:        s.now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, emp.ID.String(), events.EmployeeDeleted, payload); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidate(ctx,
		cachekey.DepartmentHeadcount,
		cachekey.ManagerDashboard(attendance.FormatDate(s.now(), s.loc)),
	)

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_DELETED",
			ActorID: actor,
			Message: "employee and attendance history removed",
			Meta: map[string]any{
				"employee_id":        emp.ID.String(),
				"employee_code":      emp.EmployeeCode,
				"attendance_removed": removed,
			},
		})
	}

	s.logger.Info("employee deleted",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int64("attendance_removed", removed),
	)
	return nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, aggregateID, eventType string, payload any) error {
	rid := contextutil.GetRequestID(ctx)

	event, err := kafka.NewOutboxEvent(rid, kafka.AggregateEmployee, aggregateID,
		eventType, events.EmployeeLifecycleTopic, payload)
	if err != nil {
		s.logger.Error("marshal employee event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", aggregateID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidate(ctx context.Context, keys ...string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func filterEmployees(rows []Employee, q, department string) []Employee {
	q = strings.ToLower(strings.TrimSpace(q))
	department = strings.TrimSpace(department)
	if q == "" && department == "" {
		return rows
	}

	out := rows[:0:0]
	for _, e := range rows {
		if department != "" && !strings.EqualFold(e.Department, department) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.FullName), q) &&
			!strings.Contains(strings.ToLower(e.Email), q) &&
			!strings.Contains(strings.ToLower(e.EmployeeCode), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortEmployees(rows []Employee, sortBy, sortDir string) {
	key := func(e Employee) string {
		switch sortBy {
		case "email":
			return e.Email
		case "employee_code":
			return e.EmployeeCode
		case "department":
			return e.Department
		case "created_at":
			return e.CreatedAt.UTC().Format(time.RFC3339Nano)
		default:
			return strings.ToLower(e.FullName)
		}
	}
	desc := strings.EqualFold(sortDir, "desc")

	slices.SortStableFunc(rows, func(a, b Employee) int {
		c := strings.Compare(key(a), key(b))
		if desc {
			return -c
		}
		return c
	})
}

func toResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		Name:         e.FullName,
		Email:        e.Email,
		Role:         e.Role,
		EmployeeCode: e.EmployeeCode,
		Department:   e.Department,
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
