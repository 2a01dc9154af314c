// Package validator provides small predicate builders and the Rule helpers that
// turn them into field-level validation errors.
//
// The predicate builders return plain closures and can be used anywhere a
// boolean check is expected, for example as validators of component properties:
//
//	isSize := validator.IsOneOf([]string{"sm", "md", "lg"})
//	isSize("md") // true
//
//	inRange := validator.IsBetween(1, 10)
//	inRange(11) // false
//
//	validator.IsPresent()("  ") // false
//	validator.IsPresent()(0)    // true
//
// Structural checks of dynamic values are delegated to package shape.
//
// # Rules
//
// Every rule helper (OneOf, Between, Present, Shaped, ...) returns a Rule that
// couples a deferred check with translation-friendly error metadata. Apply
// evaluates the rules and aggregates failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.OneOf("size", props["size"], []any{"sm", "md", "lg"}),
//	    validator.Shaped("user", props["user"], userShape),
//	    validator.AllShaped("items", items, itemShape),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields() == []string{"user"}
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is.
//
// All helpers are stateless and safe for concurrent use.
package validator
