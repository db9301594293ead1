package payment

import "errors"

// ErrInvalidStatus is returned when a raw status string is not one of the
// statuses this service tracks.
var ErrInvalidStatus = errors.New("invalid order status")
