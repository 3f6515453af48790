package rbac_http

import (
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, service rbac.Service, authMW gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMW)
	{
		group.POST("/enforce", handler.Enforce)

		// Management
		group.GET("/roles", middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionRead), handler.ListRoles)
		// Hanya SUPER_ADMIN; izin ini tidak bisa diberikan lewat grant.
		group.PUT("/roles/:role/permissions", middleware.RoleMiddleware(domain.RoleSuperAdmin), handler.UpdateRolePermissions)
	}
}
