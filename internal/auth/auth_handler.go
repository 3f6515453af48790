package auth

import (
	"net/http"
	"strings"
	"time"

	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/shared/apperror"
	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
}

func NewHandler(s Service, cookies CookieConfig) *Handler {
	return &Handler{service: s, cookies: cookies}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// isWebClient: browser memakai cookie HttpOnly, mobile memakai body.
func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("X-Client-Type"), "web")
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, pair TokenPair, user AuthResponse) {
	if isWebClient(c) {
		h.setCookie(c, accessCookie, pair.AccessToken, int(h.cookies.AccessTTL.Seconds()))
		h.setCookie(c, refreshCookie, pair.RefreshToken, int(h.cookies.RefreshTTL.Seconds()))
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.writeTokens(c, pair, user)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var refreshToken string
	if isWebClient(c) {
		cookie, err := c.Cookie(refreshCookie)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "Missing refresh token", nil)
			return
		}
		refreshToken = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.MapValidationError(err))
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, user, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		writeError(c, err)
		return
	}
	h.writeTokens(c, pair, user)
}

func (h *Handler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookie)
	if refreshToken == "" {
		var req RefreshRequest
		if c.ShouldBindJSON(&req) == nil {
			refreshToken = req.RefreshToken
		}
	}

	if err := h.service.Logout(c.Request.Context(), refreshToken); err != nil {
		writeError(c, err)
		return
	}

	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Me(c *gin.Context) {
	userResp, err := h.service.GetMe(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userResp, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	actorRole, _ := domain.ParseRole(c.GetString(middleware.CtxRole))
	res, err := h.service.Register(c.Request.Context(), actorRole, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}
