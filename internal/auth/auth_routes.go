package auth

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
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", middleware.RateLimitByIP(2, 5), handler.Logout)
		auth.GET("/me", authMW, middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/register",
			authMW,
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceUser, domain.ActionCreate),
			handler.Register,
		)
	}
}
