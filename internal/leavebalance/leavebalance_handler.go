package leavebalance

import (
	"net/http"
	"strconv"

	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/shared/apperror"
	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	ledger Ledger
	logger *zap.Logger
}

func NewHandler(ledger Ledger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavebalance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.handler")
	}
	return &Handler{ledger: ledger, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func queryYear(c *gin.Context) int {
	year, _ := strconv.Atoi(c.Query("year"))
	return year
}

func (h *Handler) GetMine(c *gin.Context) {
	h.get(c, c.GetString(middleware.CtxEmployeeID))
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	h.get(c, c.Param("employee_id"))
}

func (h *Handler) get(c *gin.Context, employeeID string) {
	resp, err := h.ledger.Summary(c.Request.Context(), employeeID, queryYear(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Adjust(c *gin.Context) {
	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	resp, err := h.ledger.Adjust(c.Request.Context(), actorID, c.Param("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
