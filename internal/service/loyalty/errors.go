package loyalty

import "errors"

var (
	ErrBusinessNotFound   = errors.New("business not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfStock         = errors.New("out of stock")
)
