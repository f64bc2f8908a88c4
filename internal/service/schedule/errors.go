package schedule

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidWindow    = errors.New("invalid schedule window")
	ErrDuplicateDay     = errors.New("duplicate day of week in schedule")
)
