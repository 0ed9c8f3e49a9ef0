package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
	"github.com/worksight/worksight-backend-go/internal/pkg/utils"
)

type Service struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	locationRepo   location.LocationRepository
	shiftRepo      shift.ShiftRepository
	clock          clock.Clock
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	locationRepo location.LocationRepository,
	shiftRepo shift.ShiftRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &Service{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		shiftRepo:      shiftRepo,
		clock:          clk,
	}
}

func (s *Service) CheckIn(ctx context.Context, principal *user.Principal, req *attendance.CheckInRequest) (*attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if principal.Role == user.RoleAdmin {
		return nil, attendance.ErrCheckInNotAllowed
	}

	u, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if u.LocationID == nil {
		return nil, attendance.ErrNotLocationAssigned
	}

	today := s.clock.Today()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, principal.UserID, today)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case attendance.StatusPresent, attendance.StatusCheckedOut:
			return nil, attendance.ErrAlreadyCheckedIn
		case attendance.StatusAbsent:
			return nil, attendance.ErrMarkedAbsent
		}
	}

	loc, err := s.locationRepo.GetByID(ctx, *u.LocationID)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, attendance.ErrLocationNotFound
		}
		return nil, err
	}

	distance, err := s.enforceGeofence(loc, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	isLate, lateMinutes := s.evaluateLateness(ctx, loc.ID, s.clock.LocalNow())

	var rec *attendance.Record
	if existing != nil {
		// A reconciliation backfill already placed a not_marked row for
		// today. Promote it in place instead of inserting.
		existing.Status = attendance.StatusPresent
		existing.CheckInTime = &now
		existing.CheckInLat = req.Latitude
		existing.CheckInLon = req.Longitude
		existing.DistanceMeters = &distance
		existing.IsLate = isLate
		existing.LateMinutes = lateMinutes
		if err := s.attendanceRepo.Update(ctx, existing, attendance.StatusNotMarked); err != nil {
			// A concurrent check-in promoted the row first.
			if errors.Is(err, attendance.ErrStatusConflict) {
				return nil, attendance.ErrAlreadyCheckedIn
			}
			return nil, err
		}
		rec = existing
	} else {
		rec = &attendance.Record{
			ID:             uuid.NewString(),
			EmployeeID:     principal.UserID,
			LocationID:     loc.ID,
			Date:           today,
			Status:         attendance.StatusPresent,
			CheckInTime:    &now,
			CheckInLat:     req.Latitude,
			CheckInLon:     req.Longitude,
			DistanceMeters: &distance,
			IsLate:         isLate,
			LateMinutes:    lateMinutes,
		}
		if err := s.attendanceRepo.Create(ctx, rec); err != nil {
			// A concurrent check-in won the insert race.
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				return nil, attendance.ErrAlreadyCheckedIn
			}
			return nil, err
		}
	}

	message := "Checked in successfully"
	if isLate {
		message = fmt.Sprintf("Checked in late by %d minutes", lateMinutes)
	}

	return &attendance.CheckInResponse{
		Record:         attendance.ToRecordResponse(rec),
		Message:        message,
		DistanceMeters: distance,
	}, nil
}

func (s *Service) CheckOut(ctx context.Context, principal *user.Principal) (*attendance.CheckOutResponse, error) {
	if principal.Role == user.RoleAdmin {
		return nil, attendance.ErrCheckInNotAllowed
	}

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, principal.UserID, s.clock.Today())
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, attendance.ErrNotCheckedIn
		}
		return nil, err
	}

	switch rec.Status {
	case attendance.StatusCheckedOut:
		return nil, attendance.ErrAlreadyCheckedOut
	case attendance.StatusNotMarked, attendance.StatusAbsent:
		return nil, attendance.ErrNotCheckedIn
	}

	now := s.clock.Now()
	rec.Status = attendance.StatusCheckedOut
	rec.CheckOutTime = &now

	if err := s.attendanceRepo.Update(ctx, rec, attendance.StatusPresent); err != nil {
		// A concurrent check-out closed the record first.
		if errors.Is(err, attendance.ErrStatusConflict) {
			return nil, attendance.ErrAlreadyCheckedOut
		}
		return nil, err
	}

	return &attendance.CheckOutResponse{
		Record:  attendance.ToRecordResponse(rec),
		Message: "Checked out successfully",
	}, nil
}

func (s *Service) Today(ctx context.Context, principal *user.Principal) (*attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, principal.UserID, s.clock.Today())
	if err != nil {
		// No record yet is a normal morning, not an error.
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return attendance.ToRecordResponse(rec), nil
}

func (s *Service) History(ctx context.Context, principal *user.Principal, from, to time.Time) ([]*attendance.RecordResponse, error) {
	if to.IsZero() {
		to = s.clock.Today()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, principal.UserID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]*attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}

	return responses, nil
}

func (s *Service) ListAll(ctx context.Context, principal *user.Principal, filter *attendance.ListFilter) (*attendance.ListResponse, error) {
	if filter == nil {
		filter = &attendance.ListFilter{}
	}
	filter.Normalize()

	// Supervisors only ever see their own location.
	if scoped := principal.ScopedLocationID(); scoped != nil {
		filter.LocationID = scoped
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}

	totalPages := (total + filter.PageSize - 1) / filter.PageSize

	return &attendance.ListResponse{
		Records:    responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// enforceGeofence returns the distance to the location, or an
// OutOfRangeError when the position falls outside the allowed radius.
// Locations without coordinates accept any position at distance zero.
func (s *Service) enforceGeofence(loc *location.Location, lat, lon float64) (float64, error) {
	if !loc.HasGeofence() {
		return 0.0, nil
	}

	within, distance := utils.IsWithinRadius(lat, lon, *loc.Latitude, *loc.Longitude, loc.AllowedRadiusMeters)
	if !within {
		return distance, &attendance.OutOfRangeError{
			DistanceMeters: distance,
			AllowedMeters:  loc.AllowedRadiusMeters,
		}
	}

	return distance, nil
}

func (s *Service) evaluateLateness(ctx context.Context, locationID string, checkInAt time.Time) (bool, int) {
	cfg, err := s.shiftRepo.GetByLocation(ctx, locationID)
	if err != nil {
		// No shift configured means lateness cannot be judged.
		return false, 0
	}

	return CalculateLate(checkInAt, cfg)
}
