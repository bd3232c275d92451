package logger

import "errors"

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("logger: invalid level")
