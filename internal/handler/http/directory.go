package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worksight/worksight-backend-go/internal/domain/department"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/handler/http/middleware"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

// DirectoryHandler serves the reference data surfaces: locations,
// departments and shift configurations.
type DirectoryHandler struct {
	locations   location.LocationService
	departments department.DepartmentService
	shifts      shift.ShiftService
}

func NewDirectoryHandler(
	locations location.LocationService,
	departments department.DepartmentService,
	shifts shift.ShiftService,
) *DirectoryHandler {
	return &DirectoryHandler{
		locations:   locations,
		departments: departments,
		shifts:      shifts,
	}
}

func (h *DirectoryHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req location.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locations.Create(r.Context(), principal, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created", result)
}

func (h *DirectoryHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	result, err := h.locations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *DirectoryHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req location.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locations.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location updated", result)
}

func (h *DirectoryHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	if err := h.locations.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deleted", nil)
}

func (h *DirectoryHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.locations.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *DirectoryHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departments.Create(r.Context(), principal, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", result)
}

func (h *DirectoryHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.departments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *DirectoryHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departments.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", result)
}

func (h *DirectoryHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	if err := h.departments.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

func (h *DirectoryHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.departments.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *DirectoryHandler) UpsertShift(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LocationID = chi.URLParam(r, "locationID")

	result, err := h.shifts.Upsert(r.Context(), principal, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift configuration saved", result)
}

func (h *DirectoryHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.shifts.GetByLocation(r.Context(), chi.URLParam(r, "locationID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *DirectoryHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	if err := h.shifts.DeleteByLocation(r.Context(), principal, chi.URLParam(r, "locationID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift configuration deleted", nil)
}

func (h *DirectoryHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.shifts.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
