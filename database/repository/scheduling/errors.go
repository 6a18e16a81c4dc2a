package schedulingRepo

import "errors"

// ErrNotFound is returned when no document matches the requested id.
var ErrNotFound = errors.New("not found")
