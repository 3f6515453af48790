package user

import (
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(authMW)
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionRead),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionRead),
			handler.GetById,
		)

		users.PATCH("/:id/role",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionUpdate),
			handler.UpdateRole,
		)

		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionUpdate),
			handler.ToggleStatus,
		)

		// Admin reset password akun lain
		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionUpdate),
			handler.ResetPassword,
		)

		// Self change password
		users.PUT("/me/password",
			middleware.RateLimitByUser(0.5, 2),
			handler.ChangePassword,
		)
	}
}
