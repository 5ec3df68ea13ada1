package dashboard

import (
	"go-attendo/internal/domain"
	"go-attendo/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	dashboards := r.Group("/dashboard")
	dashboards.Use(auth)
	dashboards.Use(middleware.ContextLogger(logger))
	{
		dashboards.GET("/employee",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceDashboardSelf, domain.ActionRead),
			handler.Employee,
		)
		dashboards.GET("/manager",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceDashboardTeam, domain.ActionRead),
			handler.Manager,
		)
	}
}
