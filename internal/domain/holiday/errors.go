package holiday

import "errors"

var (
	ErrNotFound    = errors.New("holiday not found")
	ErrUnavailable = errors.New("holiday list unavailable")
)
