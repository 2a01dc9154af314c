// Package shape provides runtime predicates that check whether a dynamic value
// conforms to a declarative, recursive shape description.
//
// A Shape maps property names to descriptor entries. An entry is either a single
// descriptor or a slice of alternatives, where the property passes when at least
// one alternative matches. Descriptors can be:
//
//   - the absence markers Undefined (or the string "undefined") and nil (or the
//     string "null"),
//   - a type name string, compared case-insensitively with the runtime type name
//     of the value ("string", "Number", "ARRAY", "object", "Date", "Dog"),
//   - a constructor reference (String, Number, Boolean, Array, Object, Function,
//     Date, TypeOf[T] or Func),
//   - another Shape, matched recursively.
//
// # Usage
//
//	isUser := shape.Matches(shape.Shape{
//	    "name":    shape.String,
//	    "age":     []any{"number", shape.Undefined},
//	    "manager": []any{nil, shape.Shape{"id": "string"}},
//	})
//
//	isUser(map[string]any{"name": "Ann", "manager": nil}) // true
//	isUser(map[string]any{"name": 42})                    // false
//
// Values are usually maps decoded from JSON or YAML, but structs and pointers to
// structs work too: properties are looked up by json tag, then by field name.
// Properties that are not declared in the shape are never inspected.
//
// # Semantics
//
// Matching is existential across the alternatives of one property and universal
// across properties. MatchesForAll lifts a predicate to slices, and is true for an
// empty slice. A slice entry always means alternatives; use "array" or Array to
// require an array value.
//
// Predicates never panic and never report why a value failed. Malformed entries
// simply never match; use Lint to find them ahead of time.
//
// # Concurrency
//
// Predicates are pure closures over a compiled copy of the shape and are safe for
// concurrent use. Shapes must be acyclic unless WithMaxDepth is supplied.
package shape
