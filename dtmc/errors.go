package dtmc

import "errors"

// ErrInvalidArgument is returned when untyped input cannot be turned into
// a state identifier or proposition.
var ErrInvalidArgument = errors.New("invalid argument")
