package validator

import "fmt"

// Present validates that value carries content, see IsPresent.
func Present(field string, value any) Rule {
	return newRule(field,
		ErrNotPresent.Error(),
		"validation.required",
		nil,
		func() bool { return isPresent(value) },
	)
}

// AllPresent validates that every element of values is present.
func AllPresent(field string, values []any) Rule {
	return newRule(field,
		"all items are required",
		"validation.all_required",
		nil,
		func() bool { return AllArePresent()(values) },
	)
}

// AllIn validates that every element of values is one of options.
func AllIn[T comparable](field string, values, options []T) Rule {
	return newRule(field,
		fmt.Sprintf("all items must be one of: %v", options),
		"validation.all_in_list",
		map[string]any{"allowed_values": options},
		func() bool { return AllAreIn(options)(values) },
	)
}
