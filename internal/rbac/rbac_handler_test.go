package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendo/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	lastReq domain.EnforceRequest
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	f.lastReq = req
	return req.Role == domain.RoleManager, nil
}

func (f *fakeService) Permissions(role string) ([]domain.PermissionResponse, error) {
	return []domain.PermissionResponse{{Resource: domain.ResourceProfile, Action: domain.ActionRead}}, nil
}

func withIdentity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("employee_id", "emp-1")
		c.Set("role", role)
		c.Next()
	}
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{}
	router := gin.New()
	RegisterRoutes(router.Group(""), NewHandler(svc), withIdentity(domain.RoleManager))

	body, _ := json.Marshal(map[string]string{"resource": " employee ", "action": "delete"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-1", svc.lastReq.Subject)
	assert.Equal(t, "employee", svc.lastReq.Resource)

	var resp struct {
		Ok   bool                   `json:"ok"`
		Data domain.EnforceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Allowed)
}

func TestHandler_EnforceValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group(""), NewHandler(&fakeService{}), withIdentity(domain.RoleEmployee))

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"employee"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group(""), NewHandler(&fakeService{}), withIdentity(domain.RoleEmployee))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resource":"profile"`)
}
