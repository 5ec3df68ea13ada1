package attendance

import (
	"time"

	"go-attendo/internal/domain"
	"go-attendo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	att := r.Group("/attendance")
	att.Use(auth)
	att.Use(middleware.ContextLogger(logger))
	{
		att.POST("/checkin",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceSelf, domain.ActionCreate),
			middleware.Idempotency(rdb, idempotencyTTL),
			handler.CheckIn,
		)

		att.POST("/checkout",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceSelf, domain.ActionCreate),
			middleware.Idempotency(rdb, idempotencyTTL),
			handler.CheckOut,
		)

		att.GET("/today",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceSelf, domain.ActionRead),
			handler.Today,
		)

		att.GET("/my-history",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceSelf, domain.ActionRead),
			handler.MyHistory,
		)

		att.GET("/my-summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceSelf, domain.ActionRead),
			handler.MySummary,
		)

		att.GET("/all",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionRead),
			handler.GetAll,
		)

		att.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionRead),
			handler.GetByEmployee,
		)

		att.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionRead),
			handler.TeamSummary,
		)

		att.GET("/today-status",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionRead),
			handler.TodayStatus,
		)

		att.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionExport),
			handler.Export,
		)

		att.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendanceTeam, domain.ActionRead),
			handler.GetByID,
		)
	}
}
