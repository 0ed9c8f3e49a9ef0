package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift configuration not found")
	ErrShiftExists   = errors.New("location already has a shift configuration")
)
