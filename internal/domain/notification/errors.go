package notification

import "errors"

var (
	ErrUnknownRecipientType = errors.New("unknown notification recipient type")
)
