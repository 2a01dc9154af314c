package main

import (
	"errors"
	"fmt"
)

var (
	ErrMismatch         = errors.New("one or more documents do not match the shape")
	ErrLintFailed       = errors.New("one or more shape files have problems")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrReadData         = errors.New("failed to read data file")
)

func errInvalidLogFormat(f string) error {
	return fmt.Errorf("%w: %q (valid: json, text)", ErrInvalidLogFormat, f)
}
