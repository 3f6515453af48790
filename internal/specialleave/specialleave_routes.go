package specialleave

import (
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	idempotency gin.HandlerFunc,
) {
	catalog := r.Group("/special-leaves")
	catalog.Use(authMW)
	{
		catalog.GET("", handler.ListCatalog)
		catalog.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionManage), handler.CreateCatalog)
	}

	requests := r.Group("/employee-special-leaves")
	requests.Use(authMW)
	{
		requests.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionRead), handler.GetAll)
		requests.GET("/me", middleware.RequireEmployee(), handler.GetMine)
		requests.POST("",
			middleware.RequireEmployee(),
			middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionCreate),
			idempotency,
			handler.Create,
		)
		requests.POST("/admin",
			middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionManage),
			idempotency,
			handler.CreateForEmployee,
		)
		requests.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionApprove), handler.Approve)
		requests.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, domain.ResourceSpecialLeave, domain.ActionApprove), handler.Reject)
	}
}
