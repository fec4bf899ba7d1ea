package swap

import "errors"

var (
	ErrSwapNotFound = errors.New("shift swap request not found")
)
