package validator

import "github.com/dmitrymomot/shapeguard/pkg/shape"

// Shaped validates that value satisfies s. The error names field only; the
// failing property inside the value is not reported.
func Shaped(field string, value any, s shape.Shape, opts ...shape.Option) Rule {
	return newRule(field,
		ErrShapeMismatch.Error(),
		"validation.shape",
		nil,
		func() bool { return shape.Matches(s, opts...)(value) },
	)
}

// AllShaped validates that every element of values satisfies s.
func AllShaped[T any](field string, values []T, s shape.Shape, opts ...shape.Option) Rule {
	return newRule(field,
		"all items must match the expected shape",
		"validation.all_shape",
		map[string]any{"count": len(values)},
		func() bool { return shape.MatchesEach[T](s, opts...)(values) },
	)
}
