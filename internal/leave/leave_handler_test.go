package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	leavemock "go-hrms/internal/leave/mock"
	"go-hrms/internal/middleware"
	"go-hrms/internal/request"
	"go-hrms/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerContext(t *testing.T, req *http.Request, actor *domain.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestLeaveHandler_SubmitJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		svc.EXPECT().
			Submit(gomock.Any(), employeeActor, submitReq(), gomock.Nil()).
			Return(request.RequestResponse{ID: "r-1", Status: "PENDING"}, nil)

		body := `{"type_code":"paid_leave","effective_from":"2025-06-02","effective_to":"2025-06-04","reason":"family trip"}`
		req := httptest.NewRequest(http.MethodPost, "/leave/time-off", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c, w := newHandlerContext(t, req, &employeeActor)

		leave.NewHandler(svc).Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"r-1"`)
	})

	t.Run("missing reason", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))

		body := `{"type_code":"PAID_LEAVE","effective_from":"2025-06-02","effective_to":"2025-06-04"}`
		req := httptest.NewRequest(http.MethodPost, "/leave/time-off", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c, w := newHandlerContext(t, req, &employeeActor)

		leave.NewHandler(svc).Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no actor", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		req := httptest.NewRequest(http.MethodPost, "/leave/time-off", strings.NewReader(`{}`))
		c, w := newHandlerContext(t, req, nil)

		leave.NewHandler(svc).Submit(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_SubmitMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type_code", "paid_leave"))
	require.NoError(t, mw.WriteField("effective_from", "2025-06-02"))
	require.NoError(t, mw.WriteField("effective_to", "2025-06-04"))
	require.NoError(t, mw.WriteField("reason", "family trip"))
	part, err := mw.CreateFormFile("attachments", "note.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
	svc.EXPECT().
		Submit(gomock.Any(), employeeActor, submitReq(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ leave.SubmitTimeOffRequest, files []storage.File) (request.RequestResponse, error) {
			require.Len(t, files, 1)
			assert.Equal(t, "note.pdf", files[0].Name)
			assert.Equal(t, int64(8), files[0].Size)
			content, err := io.ReadAll(files[0].Body)
			assert.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(content))
			return request.RequestResponse{ID: "r-2"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/leave/time-off", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c, w := newHandlerContext(t, req, &employeeActor)

	leave.NewHandler(svc).Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLeaveHandler_Cancel(t *testing.T) {
	svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
	svc.EXPECT().Cancel(gomock.Any(), employeeActor, "r-1").Return(request.RequestResponse{}, leaveerrors.ErrNotTimeOffRequest)

	req := httptest.NewRequest(http.MethodPost, "/leave/time-off/r-1/cancel", nil)
	c, w := newHandlerContext(t, req, &employeeActor)
	c.Params = gin.Params{{Key: "id", Value: "r-1"}}

	leave.NewHandler(svc).Cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveHandler_History(t *testing.T) {
	svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
	svc.EXPECT().
		History(gomock.Any(), employeeActor, leave.HistoryQuery{Status: "PENDING", Page: 1, Limit: 5}).
		Return([]request.RequestResponse{{ID: "a"}, {ID: "b"}}, int64(7), nil)

	req := httptest.NewRequest(http.MethodGet, "/leave/time-off?status=PENDING&page=1&limit=5", nil)
	c, w := newHandlerContext(t, req, &employeeActor)

	leave.NewHandler(svc).History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestLeaveHandler_Balances(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		svc.EXPECT().
			Balances(gomock.Any(), employeeActor, leave.BalancesQuery{Year: 2024}).
			Return(leave.BalancesResponse{Year: 2024}, nil)

		req := httptest.NewRequest(http.MethodGet, "/leave/balances?year=2024", nil)
		c, w := newHandlerContext(t, req, &employeeActor)

		leave.NewHandler(svc).Balances(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("scope error", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		svc.EXPECT().Balances(gomock.Any(), employeeActor, gomock.Any()).Return(leave.BalancesResponse{}, leaveerrors.ErrBalanceScope)

		req := httptest.NewRequest(http.MethodGet, "/leave/balances?employee_id=someone", nil)
		c, w := newHandlerContext(t, req, &employeeActor)

		leave.NewHandler(svc).Balances(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, leaveerrors.ErrBalanceScope.Code, errorCode(t, w))
	})
}

func TestLeaveHandler_SetEntitlement(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		req := httptest.NewRequest(http.MethodPut, "/leave/balances", strings.NewReader(`{"employee_id":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		c, w := newHandlerContext(t, req, &adminActor)

		leave.NewHandler(svc).SetEntitlement(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := leavemock.NewMockTimeOffService(gomock.NewController(t))
		svc.EXPECT().SetEntitlement(gomock.Any(), employeeActor, gomock.Any()).Return(leave.BalanceResponse{}, leaveerrors.ErrAdminOnly)

		body := `{"employee_id":"` + adminActor.EmployeeID.String() + `","balance_type":"Annual Leave","year":2025,"total":"20"}`
		req := httptest.NewRequest(http.MethodPut, "/leave/balances", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c, w := newHandlerContext(t, req, &employeeActor)

		leave.NewHandler(svc).SetEntitlement(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
