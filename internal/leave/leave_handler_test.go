package leave_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pengelola-cuti/internal/approval"
	"pengelola-cuti/internal/leave"
	leaveerrors "pengelola-cuti/internal/leave/errors"
	"pengelola-cuti/internal/leave/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func newLeaveContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestLeaveHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	typeID := uuid.NewString()
	body := `{"type_of_leave_id":"` + typeID + `","start_date":"2026-05-04","end_date":"2026-05-06","reason":"trip"}`

	t.Run("success uses caller employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		userID, employeeID := uuid.NewString(), uuid.NewString()

		svc.EXPECT().
			Create(gomock.Any(), userID, employeeID, gomock.Any()).
			Return(leave.LeaveResponse{ID: uuid.NewString(), Status: "WAITING", AmountOfLeave: 3}, nil)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPost, "/leaves", body)
		c.Set("user_id", userID)
		c.Set("employee_id", employeeID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPost, "/leaves", `{"type_of_leave_id":"`+typeID+`","start_date":"2026-05-04","end_date":"2026-05-06"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative overlap maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPost, "/leaves", body)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_CreateForEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	employeeID := uuid.NewString()
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), employeeID, gomock.Any()).
		Return(leave.LeaveResponse{EmployeeID: employeeID}, nil)

	h := leave.NewHandler(svc)
	c, w := newLeaveContext(http.MethodPost, "/leaves/admin",
		`{"employee_id":"`+employeeID+`","type_of_leave_id":"`+uuid.NewString()+`","start_date":"2026-05-04","end_date":"2026-05-04","reason":"x"}`)
	c.Set("user_id", uuid.NewString())

	h.CreateForEmployee(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLeaveHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns pagination meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			GetAll(gomock.Any(), leave.ListLeavesQuery{Status: "WAITING", Year: 2026, Page: 2, PageSize: 5}).
			Return([]leave.LeaveResponse{{ID: "a"}}, int64(6), nil)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodGet, "/leaves?status=WAITING&year=2026&page=2&page_size=5", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		}
		assert.NoError(t, json.Unmarshal(env.Meta, &meta))
		assert.Equal(t, int64(6), meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("negative unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodGet, "/leaves?status=DONE", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_GetMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	employeeID := uuid.NewString()
	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q leave.ListLeavesQuery) ([]leave.LeaveResponse, int64, error) {
			assert.Equal(t, employeeID, q.EmployeeID)
			return nil, 0, nil
		})

	h := leave.NewHandler(svc)
	c, w := newLeaveContext(http.MethodGet, "/leaves/me?employee_id="+uuid.NewString(), "")
	c.Set("employee_id", employeeID)

	h.GetMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_ApproveReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	leaveID := uuid.NewString()

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		userID := uuid.NewString()
		svc.EXPECT().Approve(gomock.Any(), userID, leaveID).Return(leave.LeaveResponse{ID: leaveID, Status: "APPROVE"}, nil)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPatch, "/leaves/"+leaveID+"/approve", "")
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set("user_id", userID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve decided leave is conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), leaveID).Return(leave.LeaveResponse{}, approval.ErrInvalidTransition)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPatch, "/leaves/"+leaveID+"/approve", "")
		c.Params = gin.Params{{Key: "id", Value: leaveID}}

		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("reject passes note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Reject(gomock.Any(), gomock.Any(), leaveID, "busy").Return(leave.LeaveResponse{ID: leaveID, Status: "REJECT"}, nil)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPatch, "/leaves/"+leaveID+"/reject", `{"note":"busy"}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject empty note is bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Reject(gomock.Any(), gomock.Any(), leaveID, "").Return(leave.LeaveResponse{}, approval.ErrNoteRequired)

		h := leave.NewHandler(svc)
		c, w := newLeaveContext(http.MethodPatch, "/leaves/"+leaveID+"/reject", `{"note":""}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_CreateCollective(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		CreateCollective(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(leave.CollectiveLeaveResponse{Days: 2, LeaveIDs: []string{"a", "b"}}, nil)

	h := leave.NewHandler(svc)
	c, w := newLeaveContext(http.MethodPost, "/leaves/collective",
		`{"type_of_leave_id":"`+uuid.NewString()+`","start_date":"2026-12-24","end_date":"2026-12-25","reason":"holiday"}`)

	h.CreateCollective(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got leave.CollectiveLeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got.LeaveIDs, 2)
}
