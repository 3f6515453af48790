package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(authMW)
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead), handler.GetAll)
		leaves.GET("/me", middleware.RequireEmployee(), handler.GetMine)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead), handler.GetByID)
		leaves.POST("",
			middleware.RequireEmployee(),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			idempotency,
			handler.Create,
		)
		leaves.POST("/admin",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionManage),
			idempotency,
			handler.CreateForEmployee,
		)
		leaves.POST("/collective",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionManage),
			idempotency,
			handler.CreateCollective,
		)
		leaves.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove), handler.Approve)
		leaves.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove), handler.Reject)
	}

	types := r.Group("/leave-types")
	types.Use(authMW)
	{
		types.GET("", handler.ListTypes)
		types.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionManage), handler.CreateType)
	}
}
