package leave

import (
	"net/http"

	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/shared/apperror"
	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListTypes(c *gin.Context) {
	resp, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateType(c *gin.Context) {
	var req CreateTypeOfLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// Create files a leave for the caller's own employee record.
func (h *Handler) Create(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	employeeID := c.GetString(middleware.CtxEmployeeID)
	h.logger.Debug("http create leave", zap.String("actor_id", actorID), zap.String("employee_id", employeeID))

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// CreateForEmployee lets an administrator file a leave on behalf of anyone.
func (h *Handler) CreateForEmployee(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, req.EmployeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateCollective(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)

	var req CreateCollectiveLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateCollective(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var query ListLeavesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.list(c, query)
}

func (h *Handler) GetMine(c *gin.Context) {
	var query ListLeavesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	query.EmployeeID = c.GetString(middleware.CtxEmployeeID)
	h.list(c, query)
}

func (h *Handler) list(c *gin.Context, query ListLeavesQuery) {
	query.Page, query.PageSize = response.ParsePage(c)

	resp, total, err := h.service.GetAll(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, query.Page, query.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	id := c.Param("id")
	h.logger.Debug("http approve leave", zap.String("leave_id", id), zap.String("actor_id", actorID))

	resp, err := h.service.Approve(c.Request.Context(), actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	id := c.Param("id")

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), actorID, id, req.Note)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
