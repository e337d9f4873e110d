package domain

import "errors"

// ErrOutOfRange is returned by index-addressed operations given an index
// outside the current list bounds.
var ErrOutOfRange = errors.New("index out of range")
