package leavebalance

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
) {
	balances := r.Group("/balances")
	balances.Use(authMW)
	{
		balances.GET("/me", middleware.RequireEmployee(), handler.GetMine)
		balances.GET("/:employee_id", middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionRead), handler.GetByEmployee)
		balances.POST("/:employee_id/adjustments", middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionUpdate), handler.Adjust)
	}
}
