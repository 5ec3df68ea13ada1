package app

import (
	"database/sql"

	"go-attendo/internal/attendance"
	"go-attendo/internal/auth"
	"go-attendo/internal/auth/token"
	"go-attendo/internal/bootstrap"
	"go-attendo/internal/config"
	"go-attendo/internal/dashboard"
	"go-attendo/internal/department"
	"go-attendo/internal/employee"
	"go-attendo/internal/messaging/kafka"
	"go-attendo/internal/middleware"
	"go-attendo/internal/rbac"
	"go-attendo/internal/rbac/infra"
	"go-attendo/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	cfg      *config.Config
	db       *sql.DB
	gormDB   *gorm.DB
	rdb      *redis.Client
	registry prometheus.Registerer
	logger   *zap.Logger
}

func registerModules(api *gin.RouterGroup, m modules) error {
	loc := m.cfg.Attendance.Location

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(m.gormDB)
	employeeRepo := employee.NewRepository(m.gormDB)
	departmentRepo := department.NewRepository(m.gormDB)
	counterRepo := counter.NewRepository(m.gormDB)
	outboxRepo := kafka.NewOutboxRepository(m.db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, m.logger)

	tokens := token.NewManager(m.cfg.JWT.Secret, m.cfg.JWT.TTL, m.cfg.JWT.RefreshTTL)
	authMiddleware := middleware.AuthMiddleware(tokens)
	audit := bootstrap.NewStdoutAuditLogger(m.logger)

	// --- Services ---
	attendanceService := attendance.NewService(m.db, attendanceRepo, attendance.ServiceConfig{
		Location: loc,
		Outbox:   outboxRepo,
		Redis:    m.rdb,
		Metrics:  attendance.NewMetrics(m.registry),
		Audit:    audit,
	}, m.logger)
	employeeService := employee.NewService(m.db, employeeRepo, employee.ServiceConfig{
		Counter:    counterRepo,
		Attendance: attendanceRepo,
		Outbox:     outboxRepo,
		Redis:      m.rdb,
		Audit:      audit,
		Location:   loc,
	}, m.logger)
	departmentService := department.NewService(departmentRepo, m.rdb, m.logger)
	dashboardService := dashboard.NewService(dashboard.ServiceConfig{
		Attendance:  attendanceRepo,
		Employees:   employeeRepo,
		Departments: departmentService,
		Redis:       m.rdb,
		CacheTTL:    m.cfg.Attendance.DashboardCacheTTL,
		Location:    loc,
	}, m.logger)
	authService := auth.NewService(auth.ServiceConfig{
		Employees:          employeeService,
		EmployeeRepo:       employeeRepo,
		Tokens:             tokens,
		AllowManagerSignup: m.cfg.App.AllowManagerSignup,
	}, m.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, m.cfg.IsProduction(), m.logger)
	attendanceHandler := attendance.NewHandler(attendanceService, m.logger)
	employeeHandler := employee.NewHandler(employeeService, m.logger)
	departmentHandler := department.NewHandler(departmentService, m.logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, m.logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	auth.RegisterRoutes(api, authHandler, authMiddleware)
	attendance.RegisterRoutes(api, attendanceHandler, rbacService, authMiddleware, m.rdb, m.logger)
	employee.RegisterRoutes(api, employeeHandler, rbacService, authMiddleware, m.logger)
	department.RegisterRoutes(api, departmentHandler, rbacService, authMiddleware, m.logger)
	dashboard.RegisterRoutes(api, dashboardHandler, rbacService, authMiddleware, m.logger)
	rbac.RegisterRoutes(api, rbacHandler, authMiddleware)

	return nil
}
