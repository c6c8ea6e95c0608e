package store

import "errors"

// ErrNotFound is returned when a keyed lookup finds no item. Callers use
// errors.Is to distinguish a missing record from a backing-store failure.
var ErrNotFound = errors.New("item not found")
