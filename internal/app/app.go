package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-attendo/internal/config"
	"go-attendo/internal/middleware"
	"go-attendo/internal/shared/connection"
	"go-attendo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	SQL    *sql.DB
	Redis  *redis.Client
}

// Close releases the database pool and the redis client.
func (a *App) Close(context.Context) {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.SQL != nil {
		_ = a.SQL.Close()
	}
}

// BuildApp connects the backing services, migrates the schema and mounts
// every module under /api/v1.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := Migrate(context.Background(), gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database migrated")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := newRouter(cfg, reg, logger)
	router.GET("/healthz", healthHandler(sqlDB, rdb))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if err := registerModules(router.Group("/api/v1"), modules{
		cfg:      cfg,
		db:       sqlDB,
		gormDB:   gormDB,
		rdb:      rdb,
		registry: reg,
		logger:   logger,
	}); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return &App{Router: router, DB: gormDB, SQL: sqlDB, Redis: rdb}, nil
}

func newRouter(cfg *config.Config, reg prometheus.Registerer, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORS(cfg.App.CORSAllowedOrigins),
		middleware.HTTPMetrics(reg),
	)
	return r
}

// healthHandler reports 503 when either postgres or redis is unreachable.
func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "ok"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		if status != http.StatusOK {
			response.Error(c, status, "UNAVAILABLE", "dependency check failed", checks)
			return
		}
		response.Success(c, http.StatusOK, checks, nil)
	}
}
