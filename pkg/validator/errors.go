package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors returned by Apply.
	ErrValidationFailed = errors.New("validation failed")

	// ErrShapeMismatch is the message used when a value does not match its shape.
	ErrShapeMismatch = errors.New("does not match the expected shape")

	// ErrNotPresent is the message used when a value is blank or missing.
	ErrNotPresent = errors.New("field is required")
)
