package availability

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrServiceNotFound  = errors.New("service not found")
)
