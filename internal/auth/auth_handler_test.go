package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pengelola-cuti/internal/auth"
	autherrors "pengelola-cuti/internal/auth/errors"
	authMock "pengelola-cuti/internal/auth/mock"
	"pengelola-cuti/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var cookieCfg = auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour}

func newAuthContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pair := auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"}
	user := auth.AuthResponse{ID: "u-1", Email: "budi@example.com", Role: "EMPLOYEE"}

	t.Run("mobile gets tokens in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Login(gomock.Any(), "budi@example.com", "password123").Return(pair, user, nil)

		h := auth.NewHandler(svc, cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"acc"`)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("web gets http-only cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(pair, user, nil)

		h := auth.NewHandler(svc, cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)
		c.Request.Header.Set("X-Client-Type", "web")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 2)
		for _, ck := range cookies {
			assert.True(t, ck.HttpOnly)
		}
	})

	t.Run("negative invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		h := auth.NewHandler(svc, cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"x"}`)

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative bad email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := auth.NewHandler(authMock.NewMockService(ctrl), cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/login", `{"email":"budi","password":"x"}`)

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("web reads cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().RefreshToken(gomock.Any(), "cookie-ref").
			Return(auth.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, auth.AuthResponse{ID: "u-1"}, nil)

		h := auth.NewHandler(svc, cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/refresh", "")
		c.Request.Header.Set("X-Client-Type", "web")
		c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-ref"})

		h.RefreshToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative web without cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := auth.NewHandler(authMock.NewMockService(ctrl), cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/refresh", "")
		c.Request.Header.Set("X-Client-Type", "web")

		h.RefreshToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative replayed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().RefreshToken(gomock.Any(), "used").
			Return(auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken)

		h := auth.NewHandler(svc, cookieCfg)
		c, w := newAuthContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"used"}`)

		h.RefreshToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REFRESH_TOKEN")
	})
}

func TestHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	svc.EXPECT().Logout(gomock.Any(), "ref").Return(nil)

	h := auth.NewHandler(svc, cookieCfg)
	c, w := newAuthContext(http.MethodPost, "/auth/logout", `{"refresh_token":"ref"}`)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, ck := range w.Result().Cookies() {
		assert.Equal(t, -1, ck.MaxAge)
	}
}

func TestHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	svc.EXPECT().
		Register(gomock.Any(), domain.RoleAdmin, gomock.Any()).
		Return(auth.AuthResponse{ID: "u-2", Role: "EMPLOYEE"}, nil)

	h := auth.NewHandler(svc, cookieCfg)
	c, w := newAuthContext(http.MethodPost, "/auth/register",
		`{"email":"sari@example.com","name":"Sari","password":"rahasia123","role":"EMPLOYEE"}`)
	c.Set("role", "ADMIN")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	svc.EXPECT().GetMe(gomock.Any(), "u-1").Return(&auth.AuthResponse{ID: "u-1"}, nil)

	h := auth.NewHandler(svc, cookieCfg)
	c, w := newAuthContext(http.MethodGet, "/auth/me", "")
	c.Set("user_id", "u-1")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
