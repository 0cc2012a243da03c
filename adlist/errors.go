package adlist

import "errors"

// Error kinds returned by List operations. Operations that have call-site
// detail wrap these with fmt.Errorf and %w, so callers discriminate with
// errors.Is.
var (
	ErrInvalidValue   = errors.New("adlist: nil is not a storable value")
	ErrEmptyList      = errors.New("adlist: empty list")
	ErrEmptyStack     = errors.New("adlist: empty stack")
	ErrEmptyQueue     = errors.New("adlist: empty queue")
	ErrTargetNotFound = errors.New("adlist: target value not found")
	ErrValueNotFound  = errors.New("adlist: value not found")
	ErrOutOfRange     = errors.New("adlist: position out of range")
	ErrIncomparable   = errors.New("adlist: values are not mutually comparable")
)
