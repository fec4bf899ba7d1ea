package timeaccount

import "errors"

var (
	ErrAccountNotFound = errors.New("time account not found")
)
