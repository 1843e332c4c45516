package cwt

import "errors"

// Errors returned by the transform and the result matrix.
var (
	ErrInvalidInputLength = errors.New("cwt: input length must be a power of two")
	ErrInvalidParameter   = errors.New("cwt: invalid parameter")
	ErrIndexOutOfRange    = errors.New("cwt: index out of range")
)
