package service

import "errors"

// ErrInvalidArgument marks caller mistakes caught before any query is
// issued. Not retryable.
var ErrInvalidArgument = errors.New("invalid argument")
