package validator

import (
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

// IsOneOf returns a predicate reporting whether a value is in list. NaN matches
// NaN. Values whose dynamic types cannot be compared with == (slices, maps and
// funcs held in an interface) are compared with reflect.DeepEqual instead of
// panicking.
func IsOneOf[T comparable](list []T) func(T) bool {
	return func(v T) bool {
		return slices.ContainsFunc(list, func(item T) bool { return equal(item, v) })
	}
}

// AllAreIn returns a predicate reporting whether every value of a slice is in
// list. It is true for an empty slice.
func AllAreIn[T comparable](list []T) func([]T) bool {
	isIn := IsOneOf(list)
	return func(values []T) bool {
		for _, v := range values {
			if !isIn(v) {
				return false
			}
		}
		return true
	}
}

// IsBetween returns a predicate reporting whether a number lies in [min, max].
func IsBetween[T Numeric](min, max T) func(T) bool {
	return func(v T) bool {
		return min <= v && v <= max
	}
}

// IsPresent returns a predicate reporting whether a value carries content.
//
//	nil, shape.Undefined, NaN          => false
//	"", "  "                           => false
//	empty slices, arrays and maps      => false
//	0, false, [nil], non-empty values  => true
func IsPresent() func(any) bool {
	return isPresent
}

// AllArePresent returns a predicate reporting whether every element of a slice
// is present. It is true for an empty slice.
func AllArePresent() func([]any) bool {
	return func(values []any) bool {
		for _, v := range values {
			if !isPresent(v) {
				return false
			}
		}
		return true
	}
}

func isPresent(v any) bool {
	if v == nil || v == shape.Undefined {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	case reflect.Slice, reflect.Map:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func equal[T comparable](a, b T) (eq bool) {
	if isNaN(a) && isNaN(b) {
		return true
	}
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}
