package shape

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/text/cases"
)

// TypeName returns the runtime type name used when a string descriptor is
// compared with a value. Primitive kinds map to String, Number and Boolean,
// slices and arrays to Array, maps and anonymous structs to Object, funcs to
// Function and time.Time to Date. Named structs (and pointers to them) report
// their declared name. Null and undefined values have no name.
func TypeName(v any) string {
	if isAbsent(v) {
		return ""
	}
	switch v.(type) {
	case json.Number:
		return "Number"
	case time.Time, *time.Time:
		return "Date"
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map:
		return "Object"
	case reflect.Func:
		return "Function"
	case reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return "Object"
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return "Object"
	}
	if isNumber(v) {
		return "Number"
	}
	return t.Kind().String()
}

// foldName normalises a type name for case-insensitive comparison.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// isAbsent reports whether v counts as null or undefined: untyped nil,
// Undefined, or a typed nil pointer, map, slice, func, chan or interface.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(undefined); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isUndefinedValue reports whether v is the undefined marker.
func isUndefinedValue(v any) bool {
	_, ok := v.(undefined)
	return ok
}
