package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/handler/http/middleware"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

type fakeAttendanceService struct {
	checkInResp  *attendance.CheckInResponse
	checkInErr   error
	checkOutResp *attendance.CheckOutResponse
	checkOutErr  error
	todayResp    *attendance.RecordResponse

	gotPrincipal *user.Principal
	gotRequest   *attendance.CheckInRequest
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, principal *user.Principal, req *attendance.CheckInRequest) (*attendance.CheckInResponse, error) {
	f.gotPrincipal = principal
	f.gotRequest = req
	return f.checkInResp, f.checkInErr
}

func (f *fakeAttendanceService) CheckOut(_ context.Context, principal *user.Principal) (*attendance.CheckOutResponse, error) {
	f.gotPrincipal = principal
	return f.checkOutResp, f.checkOutErr
}

func (f *fakeAttendanceService) Today(_ context.Context, _ *user.Principal) (*attendance.RecordResponse, error) {
	return f.todayResp, nil
}

func (f *fakeAttendanceService) History(_ context.Context, _ *user.Principal, _, _ time.Time) ([]*attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) ListAll(_ context.Context, _ *user.Principal, _ *attendance.ListFilter) (*attendance.ListResponse, error) {
	return &attendance.ListResponse{Records: []*attendance.RecordResponse{}, Page: 1, PageSize: 20}, nil
}

func employeeRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	principal := &user.Principal{UserID: "emp-1", Role: user.RoleEmployee}
	return req.WithContext(middleware.WithPrincipal(req.Context(), principal))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResp: &attendance.CheckInResponse{
			Record:  &attendance.RecordResponse{ID: "rec-1", Status: string(attendance.StatusPresent)},
			Message: "Checked in successfully",
		},
	}
	handler := NewAttendanceHandler(svc)

	req := employeeRequest(t, http.MethodPost, "/api/v1/attendance/checkin", attendance.CheckInRequest{Latitude: 40.7, Longitude: -74.0})
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Checked in successfully", envelope.Message)

	require.NotNil(t, svc.gotRequest)
	assert.Equal(t, 40.7, svc.gotRequest.Latitude)
	assert.Equal(t, "emp-1", svc.gotPrincipal.UserID)
}

func TestAttendanceHandler_CheckIn_NoPrincipal(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/checkin", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAttendanceHandler_CheckIn_MalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/checkin", bytes.NewBufferString("{not json"))
	principal := &user.Principal{UserID: "emp-1", Role: user.RoleEmployee}
	req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_CheckIn_OutOfRange(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInErr: &attendance.OutOfRangeError{DistanceMeters: 412.4, AllowedMeters: 150},
	}
	handler := NewAttendanceHandler(svc)

	req := employeeRequest(t, http.MethodPost, "/api/v1/attendance/checkin", attendance.CheckInRequest{Latitude: 40.7, Longitude: -74.0})
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "You are 412 meters away from your work location (allowed: 150 meters)", envelope.Error.Message)
}

func TestAttendanceHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	svc := &fakeAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn}
	handler := NewAttendanceHandler(svc)

	req := employeeRequest(t, http.MethodPost, "/api/v1/attendance/checkin", attendance.CheckInRequest{})
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_CheckOut(t *testing.T) {
	svc := &fakeAttendanceService{
		checkOutResp: &attendance.CheckOutResponse{
			Record:  &attendance.RecordResponse{ID: "rec-1", Status: string(attendance.StatusCheckedOut)},
			Message: "Checked out successfully",
		},
	}
	handler := NewAttendanceHandler(svc)

	req := employeeRequest(t, http.MethodPost, "/api/v1/attendance/checkout", nil)
	rec := httptest.NewRecorder()
	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Checked out successfully", envelope.Message)
}

func TestAttendanceHandler_CheckOut_NotCheckedIn(t *testing.T) {
	svc := &fakeAttendanceService{checkOutErr: attendance.ErrNotCheckedIn}
	handler := NewAttendanceHandler(svc)

	req := employeeRequest(t, http.MethodPost, "/api/v1/attendance/checkout", nil)
	rec := httptest.NewRecorder()
	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Today_NoRecordYet(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	rec := httptest.NewRecorder()
	handler.Today(rec, employeeRequest(t, http.MethodGet, "/attendance/today", nil))

	require.Equal(t, http.StatusOK, rec.Code, "a morning without a record is not an error")
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Data)
}

func TestAttendanceHandler_History_BadDateParam(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := employeeRequest(t, http.MethodGet, "/api/v1/attendance/history?start_date=March+1st", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
