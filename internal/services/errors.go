package services

import "errors"

// ErrNotFound signals that the requested row does not exist. Absence is a
// normal outcome of get/update/delete, not a store failure.
var ErrNotFound = errors.New("not found")
