package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendo/internal/attendance"
	"go-attendo/internal/dashboard"
	dashboardMock "go-attendo/internal/dashboard/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc dashboard.Service) *gin.Engine {
		h := dashboard.NewHandler(svc)
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("employee_id", "11111111-1111-1111-1111-111111111111")
			c.Next()
		})
		r.GET("/dashboard/employee", h.Employee)
		r.GET("/dashboard/manager", h.Manager)
		return r
	}

	t.Run("employee dashboard uses the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := dashboardMock.NewMockService(ctrl)
		svc.EXPECT().Employee(gomock.Any(), "11111111-1111-1111-1111-111111111111").
			Return(dashboard.EmployeeDashboard{
				TodayStatus: dashboard.TodayStatus{Status: attendance.StatusAbsent},
				Recent:      []dashboard.RecentAttendance{},
			}, nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/employee", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"absent"`)
		assert.Contains(t, w.Body.String(), `"recent_attendance":[]`)
	})

	t.Run("manager dashboard failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := dashboardMock.NewMockService(ctrl)
		svc.EXPECT().Manager(gomock.Any()).Return(dashboard.ManagerDashboard{}, errors.New("db down"))

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/manager", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}
