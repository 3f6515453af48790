package position

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
	positions := r.Group("/positions")

	positions.Use(authMW)

	{
		positions.GET("", middleware.RBACAuthorize(rbacService, domain.ResourcePosition, domain.ActionRead), h.GetAll)
		positions.POST("", middleware.RBACAuthorize(rbacService, domain.ResourcePosition, domain.ActionCreate), h.Create)
		positions.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePosition, domain.ActionRead), h.GetByID)
		positions.PUT("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePosition, domain.ActionUpdate), h.Update)
		positions.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePosition, domain.ActionDelete), h.Delete)
	}
}
