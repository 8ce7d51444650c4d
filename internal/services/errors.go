package services

import "errors"

// ErrNotFound reports a missing entity or an empty collection.
var ErrNotFound = errors.New("not found")
