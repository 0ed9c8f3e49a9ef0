package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/worksight/worksight-backend-go/internal/domain/shift"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestCalculateLate(t *testing.T) {
	cfg := &shift.Config{StartTime: "09:00:00", EndTime: "17:00:00", GraceMinutes: 15}

	tests := []struct {
		name        string
		checkInAt   time.Time
		cfg         *shift.Config
		wantLate    bool
		wantMinutes int
	}{
		{"before shift start", at(8, 45), cfg, false, 0},
		{"at shift start", at(9, 0), cfg, false, 0},
		{"inside grace period", at(9, 10), cfg, false, 0},
		{"exactly at grace boundary", at(9, 15), cfg, false, 0},
		{"one minute past grace", at(9, 16), cfg, true, 16},
		{"well past grace", at(9, 30), cfg, true, 30},
		{"no shift configured", at(9, 30), nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isLate, minutes := CalculateLate(tt.checkInAt, tt.cfg)
			assert.Equal(t, tt.wantLate, isLate)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestCalculateLate_MinutesCountFromShiftStart(t *testing.T) {
	// Grace only moves the boundary. Once past it, the whole delay since
	// shift start counts, not just the part beyond the grace window.
	cfg := &shift.Config{StartTime: "09:00:00", GraceMinutes: 15}

	isLate, minutes := CalculateLate(at(9, 20), cfg)
	assert.True(t, isLate)
	assert.Equal(t, 20, minutes)
}

func TestCalculateLate_ZeroGrace(t *testing.T) {
	cfg := &shift.Config{StartTime: "09:00:00", GraceMinutes: 0}

	isLate, minutes := CalculateLate(at(9, 1), cfg)
	assert.True(t, isLate)
	assert.Equal(t, 1, minutes)
}

func TestCalculateLate_UnparseableStartTime(t *testing.T) {
	cfg := &shift.Config{StartTime: "morning", GraceMinutes: 15}

	isLate, minutes := CalculateLate(at(11, 0), cfg)
	assert.False(t, isLate)
	assert.Equal(t, 0, minutes)
}

func TestCalculateLate_HourMinuteFormat(t *testing.T) {
	cfg := &shift.Config{StartTime: "09:00", GraceMinutes: 15}

	isLate, minutes := CalculateLate(at(9, 30), cfg)
	assert.True(t, isLate)
	assert.Equal(t, 30, minutes)
}
