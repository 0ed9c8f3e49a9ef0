package http

import (
	"net/http"
	"strconv"

	"github.com/worksight/worksight-backend-go/internal/domain/analytics"
	"github.com/worksight/worksight-backend-go/internal/handler/http/middleware"
	"github.com/worksight/worksight-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	LateFrequency(w http.ResponseWriter, r *http.Request)
	AbsentTrends(w http.ResponseWriter, r *http.Request)
	ByLocation(w http.ResponseWriter, r *http.Request)
	ByDepartment(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Summary implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	result, err := h.analyticsService.Summary(r.Context(), principal, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LateFrequency implements AnalyticsHandler.
func (h *analyticsHandlerImpl) LateFrequency(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	rng, ok := parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.LateFrequency(r.Context(), principal, rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AbsentTrends implements AnalyticsHandler.
func (h *analyticsHandlerImpl) AbsentTrends(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	if v := r.URL.Query().Get("days"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			rng.Days = days
		}
	}

	result, err := h.analyticsService.AbsentTrends(r.Context(), principal, rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByLocation implements AnalyticsHandler.
func (h *analyticsHandlerImpl) ByLocation(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	result, err := h.analyticsService.ByLocation(r.Context(), principal, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByDepartment implements AnalyticsHandler.
func (h *analyticsHandlerImpl) ByDepartment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Missing access token")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	result, err := h.analyticsService.ByDepartment(r.Context(), principal, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseRange(w http.ResponseWriter, r *http.Request) (analytics.DateRange, bool) {
	from, ok := parseDateParam(w, r, "start_date")
	if !ok {
		return analytics.DateRange{}, false
	}
	to, ok := parseDateParam(w, r, "end_date")
	if !ok {
		return analytics.DateRange{}, false
	}

	return analytics.DateRange{From: from, To: to}, true
}
