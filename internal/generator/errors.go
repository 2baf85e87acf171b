package generator

import "errors"

var (
	ErrNegativeCount     = errors.New("count must not be negative")
	ErrNamesUnavailable  = errors.New("name list unavailable")
	ErrInsufficientNames = errors.New("not enough names for the requested students")
	ErrIDRangeExhausted  = errors.New("requested more unique ids than the id range holds")
)
