package location

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrNameExists       = errors.New("location name already exists")
	ErrLocationInUse    = errors.New("location is assigned to active employees")
)
