package shape

import (
	"reflect"
	"strings"
	"time"
)

// Shape maps property names to descriptor entries.
type Shape map[string]any

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. It is accepted both as a descriptor and as a
// candidate property value.
var Undefined any = undefined{}

// Kind tags the variant a raw descriptor entry was classified as.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUndefined
	KindNull
	KindTypeName
	KindTypeRef
	KindAlternatives
	KindShape
)

var kindNames = [...]string{
	KindInvalid:      "invalid",
	KindUndefined:    "undefined",
	KindNull:         "null",
	KindTypeName:     "type name",
	KindTypeRef:      "type reference",
	KindAlternatives: "alternatives",
	KindShape:        "shape",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Descriptor is a classified descriptor entry.
type Descriptor struct {
	Kind         Kind
	Name         string       // KindTypeName
	Ref          Ref          // KindTypeRef
	Alternatives []Descriptor // KindAlternatives
	Shape        Shape        // KindShape
}

// Classify turns a raw descriptor entry into its tagged variant. Absence markers
// are recognised before type names, so "null" is never a type name. Entries that
// fit no category classify as KindInvalid.
func Classify(raw any) Descriptor {
	switch {
	case IsUndefinedDescriptor(raw):
		return Descriptor{Kind: KindUndefined}
	case IsNullDescriptor(raw):
		return Descriptor{Kind: KindNull}
	case IsTypeDescriptor(raw):
		if ref, ok := raw.(Ref); ok {
			return Descriptor{Kind: KindTypeRef, Ref: ref, Name: ref.Name()}
		}
		return Descriptor{Kind: KindTypeName, Name: raw.(string)}
	}

	if alts, ok := alternatives(raw); ok {
		d := Descriptor{Kind: KindAlternatives, Alternatives: make([]Descriptor, 0, len(alts))}
		for _, alt := range alts {
			d.Alternatives = append(d.Alternatives, Classify(alt))
		}
		return d
	}

	if IsShapeDescriptor(raw) {
		return Descriptor{Kind: KindShape, Shape: toShape(raw)}
	}
	return Descriptor{Kind: KindInvalid}
}

// IsUndefinedDescriptor reports whether d is Undefined or a string equal to
// "undefined" in any case.
func IsUndefinedDescriptor(d any) bool {
	switch v := d.(type) {
	case undefined:
		return true
	case string:
		return strings.EqualFold(v, "undefined")
	}
	return false
}

// IsNullDescriptor reports whether d is untyped nil or a string equal to "null"
// in any case.
func IsNullDescriptor(d any) bool {
	if d == nil {
		return true
	}
	if s, ok := d.(string); ok {
		return strings.EqualFold(s, "null")
	}
	return false
}

// IsTypeDescriptor reports whether d names a type: a non-empty string other than
// the absence markers, or a usable Ref.
func IsTypeDescriptor(d any) bool {
	switch v := d.(type) {
	case string:
		return v != "" && !IsUndefinedDescriptor(v) && !IsNullDescriptor(v)
	case Ref:
		return v.valid()
	}
	return false
}

// IsShapeDescriptor reports whether d looks like a nested shape: a non-nil map
// with string keys whose values are all absence markers, type descriptors,
// alternatives or maps. Nested maps are accepted without being inspected.
func IsShapeDescriptor(d any) bool {
	if d == nil {
		return false
	}
	if _, ok := d.(time.Time); ok {
		return false
	}
	if s, ok := d.(Shape); ok {
		return s != nil && entriesLookLikeShape(s)
	}
	if m, ok := d.(map[string]any); ok {
		return m != nil && entriesLookLikeShape(m)
	}

	rv := reflect.ValueOf(d)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return false
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !looksLikeEntry(iter.Value().Interface()) {
			return false
		}
	}
	return true
}

func entriesLookLikeShape(m map[string]any) bool {
	for _, v := range m {
		if !looksLikeEntry(v) {
			return false
		}
	}
	return true
}

func looksLikeEntry(v any) bool {
	if IsUndefinedDescriptor(v) || IsNullDescriptor(v) || IsTypeDescriptor(v) {
		return true
	}
	if _, ok := alternatives(v); ok {
		return true
	}
	return isStringMap(v)
}

// alternatives unpacks any slice or array entry. []byte is treated like any
// other slice.
func alternatives(raw any) ([]any, bool) {
	if alts, ok := raw.([]any); ok {
		return alts, true
	}
	if raw == nil {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	alts := make([]any, rv.Len())
	for i := range alts {
		alts[i] = rv.Index(i).Interface()
	}
	return alts, true
}

func isStringMap(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// toShape copies a recognised shape map into a Shape. The caller has already
// checked IsShapeDescriptor.
func toShape(raw any) Shape {
	switch v := raw.(type) {
	case Shape:
		return v
	case map[string]any:
		return Shape(v)
	}
	rv := reflect.ValueOf(raw)
	s := make(Shape, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		s[iter.Key().String()] = iter.Value().Interface()
	}
	return s
}
