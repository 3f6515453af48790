package employee

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
	idempotency gin.HandlerFunc,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(authMW)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20), // Limit sedikit lebih longgar karena ringan
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetById,
		)

		employees.GET("/:id/history",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.History,
		)

		employees.GET("/:id/balance",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionRead),
			handler.Balance,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionCreate),
			idempotency,
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Update,
		)

		employees.PATCH("/:id/disable",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionDelete),
			handler.Disable,
		)

		employees.PATCH("/:id/enable",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Enable,
		)
	}
}
