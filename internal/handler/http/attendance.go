package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/handler/http/middleware"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), principal, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	result, err := h.attendanceService.Today(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	from, ok := parseDateParam(w, r, "start_date")
	if !ok {
		return
	}
	to, ok := parseDateParam(w, r, "end_date")
	if !ok {
		return
	}

	result, err := h.attendanceService.History(r.Context(), principal, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	filter := &attendance.ListFilter{}

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("location_id"); v != "" {
		filter.LocationID = &v
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := attendance.Status(v)
		filter.Status = &status
	}
	if from, ok := parseDateParam(w, r, "start_date"); ok {
		if !from.IsZero() {
			filter.DateFrom = &from
		}
	} else {
		return
	}
	if to, ok := parseDateParam(w, r, "end_date"); ok {
		if !to.IsZero() {
			filter.DateTo = &to
		}
	} else {
		return
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			filter.PageSize = size
		}
	}

	result, err := h.attendanceService.ListAll(r.Context(), principal, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.PageSize,
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	})
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. A zero time
// with ok=true means the parameter was absent.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, true
	}

	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		response.BadRequest(w, name+" must be YYYY-MM-DD", nil)
		return time.Time{}, false
	}

	return t, true
}
