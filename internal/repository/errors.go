package repository

import "errors"

// ErrNotFound is returned when an id or code does not resolve to a row.
var ErrNotFound = errors.New("record not found")
