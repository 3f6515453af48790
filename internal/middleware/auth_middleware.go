package middleware

import (
	"errors"
	"net/http"
	"strings"

	autherrors "pengelola-cuti/internal/auth/errors"
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/shared/contextutil"
	"pengelola-cuti/internal/shared/response"
	"pengelola-cuti/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserID     = "user_id"
	CtxEmployeeID = "employee_id"
	CtxRole       = "role"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found")
			return
		}

		claims, err := token.ParseAccess(secret, tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Abort(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}

		if claims.UserID == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token")
			return
		}

		role, ok := domain.ParseRole(claims.Role)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Role not found in token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmployeeID, claims.EmployeeID)
		c.Set(CtxRole, string(role))
		c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := domain.Role(c.GetString(CtxRole))
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Abort(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message)
	}
}
