package attendance

import (
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/shift"
)

// CalculateLate decides whether a check-in is late and by how many minutes.
//
// The grace period only moves the late/on-time boundary; minutes late are
// always measured from the unmodified shift start. Checking in at 09:20
// against a 09:00 shift with 15 minutes grace is late by 20 minutes, not 5.
// Only the time of day is compared, so shifts that cross midnight are not
// supported.
func CalculateLate(checkInAt time.Time, cfg *shift.Config) (bool, int) {
	if cfg == nil {
		return false, 0
	}

	shiftStart, err := cfg.StartOn(checkInAt)
	if err != nil {
		return false, 0
	}

	grace := time.Duration(cfg.GraceMinutes) * time.Minute
	if !checkInAt.After(shiftStart.Add(grace)) {
		return false, 0
	}

	minutes := int(checkInAt.Sub(shiftStart).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	return true, minutes
}
