package shape

import (
	"reflect"
	"strings"
)

// property reads a named property from a candidate. Missing properties, and
// every property of a null, undefined or primitive candidate, read as Undefined.
func property(candidate any, name string) any {
	if isAbsent(candidate) {
		return Undefined
	}

	switch c := candidate.(type) {
	case map[string]any:
		if v, ok := c[name]; ok {
			return v
		}
		return Undefined
	case Shape:
		if v, ok := c[name]; ok {
			return v
		}
		return Undefined
	}

	rv := reflect.ValueOf(candidate)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return mapProperty(rv, name)
	case reflect.Struct:
		return structProperty(rv, name)
	}
	return Undefined
}

func mapProperty(rv reflect.Value, name string) any {
	kt := rv.Type().Key()
	if kt.Kind() != reflect.String {
		return Undefined
	}
	v := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
	if !v.IsValid() {
		return Undefined
	}
	return v.Interface()
}

// structProperty resolves exported fields, promoted ones included, by json tag
// first and then by Go field name. As in encoding/json, the shallowest field
// wins, a tagged field beats an untagged one at the same depth, and any other
// tie hides the property. Fields tagged `json:"-"` are hidden.
func structProperty(rv reflect.Value, name string) any {
	var (
		best      []int
		depth     int
		tagged    bool
		ambiguous bool
	)
	for _, f := range reflect.VisibleFields(rv.Type()) {
		fieldName, isTagged, ok := propertyName(f)
		if !ok || fieldName != name {
			continue
		}
		d := len(f.Index)
		switch {
		case best == nil || d < depth || (d == depth && isTagged && !tagged):
			best, depth, tagged, ambiguous = f.Index, d, isTagged, false
		case d == depth && isTagged == tagged:
			ambiguous = true
		}
	}
	if best == nil || ambiguous {
		return Undefined
	}

	// Fails when the field sits behind a nil embedded pointer.
	fv, err := rv.FieldByIndexErr(best)
	if err != nil {
		return Undefined
	}
	return fv.Interface()
}

// propertyName returns the name a struct field is read under and whether it
// comes from a json tag. Untagged embedded structs contribute their fields
// only, not a property of their own.
func propertyName(f reflect.StructField) (string, bool, bool) {
	if !f.IsExported() {
		return "", false, false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, false
	}
	if tagName, _, _ := strings.Cut(tag, ","); tagName != "" {
		return tagName, true, true
	}
	if f.Anonymous {
		t := f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			return "", false, false
		}
	}
	return f.Name, false, true
}
