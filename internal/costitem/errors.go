package costitem

import "errors"

var (
	ErrNotFound       = errors.New("cost item not found")
	ErrInvalidPayload = errors.New("invalid payload")
)
