// FILE: lixenwraith/envconf/descriptor.go
package envconf

import (
	"unique"
)

// Kind identifies how a raw string is coerced.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindAtom
	KindArray
	KindJSON
)

// String returns the lower-case name used in schema declarations and error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindAtom:
		return "atom"
	case KindArray:
		return "array"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Type describes the coercion applied to a field. The zero value is String.
type Type struct {
	kind Kind
	elem *Type // element type for arrays only
}

// Kind returns the descriptor's tag.
func (t Type) Kind() Kind { return t.kind }

// Elem returns the element descriptor of an array. Non-array types return String.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{kind: KindString}
	}
	return *t.elem
}

// String renders the descriptor, e.g. "array(atom)".
func (t Type) String() string {
	if t.kind == KindArray {
		return "array(" + t.Elem().String() + ")"
	}
	return t.kind.String()
}

func String() Type  { return Type{kind: KindString} }
func Bool() Type    { return Type{kind: KindBool} }
func Int() Type     { return Type{kind: KindInt} }
func Float() Type   { return Type{kind: KindFloat} }
func Decimal() Type { return Type{kind: KindDecimal} }
func Atom() Type    { return Type{kind: KindAtom} }
func JSON() Type    { return Type{kind: KindJSON} }

// Array describes a comma separated list. Elements are strings unless an
// element type is given; only the first argument is used.
func Array(elem ...Type) Type {
	e := String()
	if len(elem) > 0 {
		e = elem[0]
	}
	return Type{kind: KindArray, elem: &e}
}

// AtomValue is an interned identifier. Two atoms made from equal strings
// compare equal with ==.
type AtomValue struct {
	h unique.Handle[string]
}

// NewAtom interns s.
func NewAtom(s string) AtomValue {
	return AtomValue{h: unique.Make(s)}
}

// String returns the atom's text.
func (a AtomValue) String() string {
	if a == (AtomValue{}) {
		return ""
	}
	return a.h.Value()
}
