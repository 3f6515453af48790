package employee_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pengelola-cuti/internal/employee"
	employeeerrors "pengelola-cuti/internal/employee/errors"
	"pengelola-cuti/internal/employee/mock"
	"pengelola-cuti/internal/leavebalance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newEmployeeContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		balance := 12
		svc.EXPECT().
			Create(gomock.Any(), employee.CreateEmployeeRequest{Name: "Budi", Gender: "MALE"}).
			Return(employee.EmployeeResponse{ID: uuid.NewString(), NIK: "000001", LeaveBalance: &balance}, nil)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodPost, "/employees", `{"name":"Budi","gender":"MALE"}`)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var data employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "000001", data.NIK)
		assert.Equal(t, 12, *data.LeaveBalance)
	})

	t.Run("negative unknown gender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodPost, "/employees", `{"name":"Budi","gender":"OTHER"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("negative duplicate nik", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrNIKAlreadyExists)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodPost, "/employees", `{"nik":"A-1","name":"Budi","gender":"MALE"}`)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q employee.ListEmployeesQuery) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, "bud", q.Q)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 5, q.PageSize)
			return []employee.EmployeeResponse{{ID: uuid.NewString(), Name: "Budi"}}, 6, nil
		})

	h := employee.NewHandler(svc)
	c, w := newEmployeeContext(http.MethodGet, "/employees?q=bud&page=2&page_size=5", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	}
	assert.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.EqualValues(t, 6, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		id := uuid.NewString()
		svc.EXPECT().GetByID(gomock.Any(), id).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodGet, "/employees/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	id, actor := uuid.NewString(), uuid.NewString()
	svc.EXPECT().
		Update(gomock.Any(), actor, id, gomock.Any()).
		Return(employee.EmployeeResponse{ID: id, Name: "Budi S"}, nil)

	h := employee.NewHandler(svc)
	c, w := newEmployeeContext(http.MethodPut, "/employees/"+id, `{"nik":"000001","name":"Budi S","gender":"MALE"}`)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set("user_id", actor)

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_DisableEnable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	t.Run("disable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Disable(gomock.Any(), id).Return(nil)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodPatch, "/employees/"+id+"/disable", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Disable(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative enable twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Enable(gomock.Any(), id).Return(employeeerrors.ErrAlreadyEnabled)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodPatch, "/employees/"+id+"/enable", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Enable(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_Balance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	t.Run("success with year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Balance(gomock.Any(), id, 2025).Return(leavebalance.BalanceResponse{EmployeeID: id, Year: 2025, Amount: 7}, nil)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodGet, "/employees/"+id+"/balance?year=2025", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Balance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var data leavebalance.BalanceResponse
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &data))
		assert.Equal(t, 7, data.Amount)
	})

	t.Run("negative bad year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := employee.NewHandler(svc)
		c, w := newEmployeeContext(http.MethodGet, "/employees/"+id+"/balance?year=abc", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Balance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
