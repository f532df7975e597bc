package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUnknownCity    = errors.New("unknown city")
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyResult    = errors.New("no trips match the filter")
)
