package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is the interface satisfied by every PDF object type that can
// appear as a content stream operand or a font resource value.
type Object interface {
	Kind() Kind
	String() string
}

// Kind identifies the concrete type of an Object.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindString
	KindName
	KindArray
	KindDict
	KindStream
	KindRef
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindName:
		return "Name"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	case KindRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Null represents the PDF null object.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) String() string { return "null" }

// Bool represents a PDF boolean.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int represents a PDF integer.
type Int int64

func (i Int) Kind() Kind     { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number.
type Real float64

func (r Real) Kind() Kind     { return KindReal }
func (r Real) String() string { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents a PDF string. The underlying bytes are raw character
// codes, not necessarily valid UTF-8; decoding them is the font's job.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return string(s) }

// Name represents a PDF name such as /F1 or /ToUnicode.
type Name string

func (n Name) Kind() Kind     { return KindName }
func (n Name) String() string { return "/" + string(n) }

// Array represents a PDF array.
type Array []Object

func (a Array) Kind() Kind { return KindArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dict represents a PDF dictionary.
type Dict map[string]Object

func (d Dict) Kind() Kind { return KindDict }
func (d Dict) String() string {
	var parts []string
	for key, val := range d {
		parts = append(parts, fmt.Sprintf("/%s %s", key, val.String()))
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Get returns the value for key, or nil when absent.
func (d Dict) Get(key string) Object {
	return d[key]
}

// GetName returns a name value for key.
func (d Dict) GetName(key string) (Name, bool) {
	n, ok := d[key].(Name)
	return n, ok
}

// GetDict returns a dictionary value for key.
func (d Dict) GetDict(key string) (Dict, bool) {
	v, ok := d[key].(Dict)
	return v, ok
}

// GetStream returns a stream value for key.
func (d Dict) GetStream(key string) (*Stream, bool) {
	s, ok := d[key].(*Stream)
	return s, ok
}

// GetRef returns an indirect reference value for key.
func (d Dict) GetRef(key string) (Ref, bool) {
	r, ok := d[key].(Ref)
	return r, ok
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Ref is a reference to an indirect object in the document's object space.
// Resolution is the document collaborator's responsibility.
type Ref struct {
	Number     int
	Generation int
}

func (r Ref) Kind() Kind     { return KindRef }
func (r Ref) String() string { return fmt.Sprintf("%d %d R", r.Number, r.Generation) }

// ToInt converts an integer or real operand to an int, truncating reals.
// It reports false for any other object type.
func ToInt(obj Object) (int, bool) {
	switch v := obj.(type) {
	case Int:
		return int(v), true
	case Real:
		return int(v), true
	}
	return 0, false
}
