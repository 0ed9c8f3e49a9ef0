package shift

import "time"

const DefaultGraceMinutes = 15

// Config is the working-hours policy for one location. StartTime and
// EndTime are times of day in "15:04:05" form; the date portion of a
// check-in is ignored when comparing against them.
type Config struct {
	ID           string
	LocationID   string
	StartTime    string
	EndTime      string
	GraceMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LocationName string
}

// StartOn anchors the shift start to the given date.
func (c *Config) StartOn(date time.Time) (time.Time, error) {
	tod, err := parseTimeOfDay(c.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, date.Location()), nil
}

func parseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}
