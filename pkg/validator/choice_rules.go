package validator

import "fmt"

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return newRule(field,
		fmt.Sprintf("must be one of: %v", options),
		"validation.in_list",
		map[string]any{"allowed_values": options},
		func() bool { return IsOneOf(options)(value) },
	)
}

// NoneOf validates that value is not one of options.
func NoneOf[T comparable](field string, value T, options []T) Rule {
	return newRule(field,
		fmt.Sprintf("must not be one of: %v", options),
		"validation.not_in_list",
		map[string]any{"forbidden_values": options},
		func() bool { return !IsOneOf(options)(value) },
	)
}
