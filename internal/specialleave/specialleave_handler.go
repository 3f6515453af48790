package specialleave

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
	l := zap.L().Named("specialleave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("specialleave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("special leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListCatalog(c *gin.Context) {
	resp, err := h.service.ListCatalog(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateCatalog(c *gin.Context) {
	var req CreateSpecialLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateCatalog(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	h.create(c, false)
}

func (h *Handler) CreateForEmployee(c *gin.Context) {
	h.create(c, true)
}

func (h *Handler) create(c *gin.Context, onBehalf bool) {
	var req CreateEmployeeSpecialLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID := c.GetString(middleware.CtxEmployeeID)
	if onBehalf {
		employeeID = req.EmployeeID
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.list(c, query)
}

func (h *Handler) GetMine(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	query.EmployeeID = c.GetString(middleware.CtxEmployeeID)
	h.list(c, query)
}

func (h *Handler) list(c *gin.Context, query ListQuery) {
	query.Page, query.PageSize = response.ParsePage(c)
	resp, total, err := h.service.GetAll(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, query.Page, query.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.Reject(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"), req.Note)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
