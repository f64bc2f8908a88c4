package booking

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNotFound         = errors.New("appointment not found")
	ErrSlotTaken        = errors.New("time slot is no longer available")
	ErrAlreadyCompleted = errors.New("appointment is already completed")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrNotCompletable   = errors.New("appointment cannot be completed from its current status")
)
