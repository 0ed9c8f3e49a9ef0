package location

import "time"

// Location is a physical work site with an optional geofence. A location
// without coordinates accepts any check-in position.
type Location struct {
	ID                  string
	Name                string
	Address             string
	Latitude            *float64
	Longitude           *float64
	AllowedRadiusMeters int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (l *Location) HasGeofence() bool {
	return l.Latitude != nil && l.Longitude != nil
}
