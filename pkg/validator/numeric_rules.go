package validator

import "fmt"

// Between validates that value lies within [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return newRule(field,
		fmt.Sprintf("must be between %v and %v", min, max),
		"validation.between",
		map[string]any{"min": min, "max": max},
		func() bool { return IsBetween(min, max)(value) },
	)
}

// Min validates that value is greater than or equal to min.
func Min[T Numeric](field string, value, min T) Rule {
	return newRule(field,
		fmt.Sprintf("must be at least %v", min),
		"validation.min",
		map[string]any{"min": min},
		func() bool { return value >= min },
	)
}

// Max validates that value is less than or equal to max.
func Max[T Numeric](field string, value, max T) Rule {
	return newRule(field,
		fmt.Sprintf("must be at most %v", max),
		"validation.max",
		map[string]any{"max": max},
		func() bool { return value <= max },
	)
}
