package shapehttp

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content-type header, expected application/json")
	ErrUnsupportedMediaType = errors.New("unsupported media type, expected application/json")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrNotArray             = errors.New("request body must be a JSON array")
	ErrShapeMismatch        = errors.New("request body does not match the expected shape")
)
