package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/rbac"
	rbacerrors "pengelola-cuti/internal/rbac/errors"
	"pengelola-cuti/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRBACContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Enforce(domain.EnforceRequest{Role: domain.RoleManager, Resource: "leave", Action: "approve"}).
			Return(true, nil)

		h := rbac.NewHandler(svc)
		c, w := newRBACContext(http.MethodPost, "/rbac/enforce", `{"role":"manager","resource":"leave","action":"approve"}`)

		h.Enforce(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("negative unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := rbac.NewHandler(svc)
		c, w := newRBACContext(http.MethodPost, "/rbac/enforce", `{"role":"owner","resource":"leave","action":"approve"}`)

		h.Enforce(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := rbac.NewHandler(svc)
		c, w := newRBACContext(http.MethodPost, "/rbac/enforce", `{"role":"ADMIN"}`)

		h.Enforce(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_UpdateRolePermissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			UpdateRolePermissions(gomock.Any(), "MANAGER", rbac.UpdateRolePermissionsRequest{Permissions: []string{"balance:update"}}).
			Return(rbac.RoleResponse{Role: "MANAGER", Granted: []string{"balance:update"}}, nil)

		h := rbac.NewHandler(svc)
		c, w := newRBACContext(http.MethodPut, "/rbac/roles/MANAGER/permissions", `{"permissions":["balance:update"]}`)
		c.Params = gin.Params{{Key: "role", Value: "MANAGER"}}

		h.UpdateRolePermissions(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"granted":["balance:update"]`)
	})

	t.Run("negative immutable role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			UpdateRolePermissions(gomock.Any(), "SUPER_ADMIN", gomock.Any()).
			Return(rbac.RoleResponse{}, rbacerrors.ErrImmutableRole)

		h := rbac.NewHandler(svc)
		c, w := newRBACContext(http.MethodPut, "/rbac/roles/SUPER_ADMIN/permissions", `{"permissions":[]}`)
		c.Params = gin.Params{{Key: "role", Value: "SUPER_ADMIN"}}

		h.UpdateRolePermissions(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_ListRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().ListRoles(gomock.Any()).Return([]rbac.RoleResponse{{Role: "ADMIN", Inherits: "MANAGER"}}, nil)

	h := rbac.NewHandler(svc)
	c, w := newRBACContext(http.MethodGet, "/rbac/roles", "")

	h.ListRoles(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inherits":"MANAGER"`)
}
