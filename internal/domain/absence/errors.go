package absence

import "errors"

var (
	ErrAbsenceNotFound = errors.New("absence request not found")
)
