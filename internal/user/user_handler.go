package user

import (
	"net/http"

	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/shared/apperror"
	"pengelola-cuti/internal/shared/contextutil"
	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actor(c *gin.Context) (string, domain.Role) {
	role, _ := domain.ParseRole(c.GetString(middleware.CtxRole))
	return c.GetString(middleware.CtxUserID), role
}

func (h *Handler) GetAll(c *gin.Context) {
	var query ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}
	query.Page, query.PageSize = response.ParsePage(c)
	h.logger.Debug("http get all users", zap.String("q", query.Q), zap.String("role", query.Role))

	resp, total, err := h.svc.GetAll(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, query.Page, query.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	actorID, actorRole := actor(c)

	res, err := h.svc.UpdateRole(ctx, actorID, actorRole, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	var body UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	actorID, actorRole := actor(c)

	res, err := h.svc.ToggleStatus(ctx, actorID, actorRole, c.Param("id"), *body.IsActive)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// ChangePassword selalu untuk akun yang sedang login.
func (h *Handler) ChangePassword(c *gin.Context) {
	var body ChangePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	if err := h.svc.ChangePassword(ctx, c.GetString(middleware.CtxUserID), body); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var body ResetPasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	_, actorRole := actor(c)

	if err := h.svc.ResetPassword(ctx, actorRole, c.Param("id"), body); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
