package middleware

import (
	"net/http"

	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireEmployee guards self-service routes: the caller's account must be
// linked to an employee record.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(CtxEmployeeID)
		if employeeID == "" {
			response.Abort(c, http.StatusForbidden, "NO_EMPLOYEE", "Akun tidak terhubung dengan data karyawan")
			return
		}

		if _, err := uuid.Parse(employeeID); err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_EMPLOYEE_ID", "Format employee_id tidak valid")
			return
		}

		c.Next()
	}
}
