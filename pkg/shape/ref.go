package shape

import (
	"encoding/json"
	"reflect"
	"time"
)

// Check reports whether a non-null, defined value belongs to a type.
type Check func(v any) bool

// Ref is a constructor reference: a named instance-of check. The zero Ref is not
// a type descriptor and never matches.
type Ref struct {
	name  string
	check Check
}

// Func builds a Ref from an arbitrary check. Absent and null values never reach
// the check.
func Func(name string, check Check) Ref {
	return Ref{name: name, check: check}
}

// TypeOf returns a Ref matching values assignable to T. When T is an interface,
// any value implementing it matches. Pointers are dereferenced once, so *Dog
// matches TypeOf[Dog]().
func TypeOf[T any]() Ref {
	t := reflect.TypeFor[T]()
	return Ref{
		name: typeLabel(t),
		check: func(v any) bool {
			vt := reflect.TypeOf(v)
			if vt.AssignableTo(t) {
				return true
			}
			if vt.Kind() == reflect.Pointer && t.Kind() != reflect.Interface {
				return vt.Elem().AssignableTo(t)
			}
			return false
		},
	}
}

// Name returns the name the reference was created with.
func (r Ref) Name() string { return r.name }

// Match reports whether v is an instance of the referenced type. Null and
// undefined values never match.
func (r Ref) Match(v any) bool {
	if !r.valid() || isAbsent(v) {
		return false
	}
	return safeCheck(r.check, v)
}

func (r Ref) valid() bool { return r.check != nil }

func (r Ref) String() string { return r.name }

// Built-in constructor references.
var (
	String   = Func("String", isString)
	Number   = Func("Number", isNumber)
	Boolean  = Func("Boolean", func(v any) bool { return kindOf(v) == reflect.Bool })
	Array    = Func("Array", isArray)
	Function = Func("Function", func(v any) bool { return kindOf(v) == reflect.Func })
	Date     = Func("Date", isDate)

	// Object matches every non-primitive value: maps, structs, slices, arrays,
	// pointers, functions and dates.
	Object = Func("Object", func(v any) bool {
		switch kindOf(v) {
		case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Pointer, reflect.Func:
			return true
		}
		return false
	})
)

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

func isString(v any) bool {
	if _, ok := v.(json.Number); ok {
		return false
	}
	return kindOf(v) == reflect.String
}

func isNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isArray(v any) bool {
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

func isDate(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

func typeLabel(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
