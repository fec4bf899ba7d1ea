package automation

import "errors"

var (
	ErrInvalidRepeatWeeks = errors.New("repeat weeks must be between 1 and 52")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
)
