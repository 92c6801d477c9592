package store

import "errors"

// ErrNotFound is returned when a requested record does not exist or is not
// visible within the requested trip scope.
var ErrNotFound = errors.New("record not found")
