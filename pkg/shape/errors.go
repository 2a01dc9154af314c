package shape

import "errors"

// Errors returned by the loaders and Lint. Predicates never return errors.
var (
	// ErrInvalidShape is returned when a document does not decode to a mapping.
	ErrInvalidShape = errors.New("shape must be a mapping of property names to descriptors")

	// ErrUnsupportedFormat is returned for shape files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported shape file format")

	// ErrReadShape is returned when a shape file cannot be read or decoded.
	ErrReadShape = errors.New("failed to read shape")

	// ErrInvalidDescriptor is reported by Lint for entries that can never match.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrNestedAlternatives is reported by Lint for alternatives inside alternatives.
	ErrNestedAlternatives = errors.New("alternatives cannot be nested")

	// ErrEmptyAlternatives is reported by Lint for an empty list of alternatives.
	ErrEmptyAlternatives = errors.New("empty alternatives never match")

	// ErrShapeTooDeep is reported by Lint when nesting exceeds its walk limit,
	// which usually means the shape is cyclic.
	ErrShapeTooDeep = errors.New("shape nesting too deep")
)
