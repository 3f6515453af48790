package setting

import (
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
) {
	settings := r.Group("/settings")

	settings.Use(authMW)

	{
		settings.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceSetting, domain.ActionRead), h.GetAll)
		settings.GET("/:key", middleware.RBACAuthorize(rbacService, domain.ResourceSetting, domain.ActionRead), h.Get)
		settings.PUT("/:key", middleware.RBACAuthorize(rbacService, domain.ResourceSetting, domain.ActionUpdate), h.Upsert)
	}
}
