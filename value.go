package pdf

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ScriptRock/pdfwriter/internal/encoding"
)

// An Object is a PDF syntax object, one of the following Go types:
//
//	Null, the PDF null
//	Boolean, a PDF boolean
//	Integer, a PDF integer
//	Real, a PDF real
//	Name, a PDF name without the leading slash
//	LiteralString, a string written between parentheses
//	HexString, a string written as hexadecimal digits
//	Array, a PDF array
//	*Dictionary, a PDF dictionary
//	*Stream, a PDF stream
//	Reference, an indirect reference
//
// A nil Object inside an Array or Dictionary is written as null.
// No other types implement Object.
type Object interface {
	Kind() Kind
	object()
}

// A Kind specifies the kind of an Object.
type Kind int

// The PDF object kinds.
const (
	NullKind Kind = iota
	BooleanKind
	IntegerKind
	RealKind
	NameKind
	LiteralStringKind
	HexStringKind
	ArrayKind
	DictionaryKind
	StreamKind
	ReferenceKind
)

var kindNames = [...]string{
	NullKind:          "null",
	BooleanKind:       "boolean",
	IntegerKind:       "integer",
	RealKind:          "real",
	NameKind:          "name",
	LiteralStringKind: "literal string",
	HexStringKind:     "hex string",
	ArrayKind:         "array",
	DictionaryKind:    "dictionary",
	StreamKind:        "stream",
	ReferenceKind:     "reference",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Null is the PDF null object.
type Null struct{}

// A Boolean is a PDF boolean.
type Boolean bool

// An Integer is a PDF integer.
type Integer int64

// A Real is a PDF real number. It is written with five digits after the
// decimal point and never in exponent form.
type Real float64

// A Name is a PDF name, without the leading slash. It holds the raw
// characters; escaping happens when the name is written.
type Name string

// A LiteralString is a string written between parentheses. It holds the
// raw text; escaping happens when the string is written.
type LiteralString string

// A HexString is a string written as uppercase hexadecimal digits between
// angle brackets. It holds the decoded bytes.
type HexString []byte

// An Array is a PDF array. Its elements belong to it alone.
type Array []Object

// A Reference is an indirect reference ("12 0 R") to an object defined in
// the same Document.
type Reference struct {
	Number     uint32
	Generation uint16
}

func (Null) Kind() Kind          { return NullKind }
func (Boolean) Kind() Kind       { return BooleanKind }
func (Integer) Kind() Kind       { return IntegerKind }
func (Real) Kind() Kind          { return RealKind }
func (Name) Kind() Kind          { return NameKind }
func (LiteralString) Kind() Kind { return LiteralStringKind }
func (HexString) Kind() Kind     { return HexStringKind }
func (Array) Kind() Kind         { return ArrayKind }
func (*Dictionary) Kind() Kind   { return DictionaryKind }
func (*Stream) Kind() Kind       { return StreamKind }
func (Reference) Kind() Kind     { return ReferenceKind }

func (Null) object()          {}
func (Boolean) object()       {}
func (Integer) object()       {}
func (Real) object()          {}
func (Name) object()          {}
func (LiteralString) object() {}
func (HexString) object()     {}
func (Array) object()         {}
func (*Dictionary) object()   {}
func (*Stream) object()       {}
func (Reference) object()     {}

func (r Reference) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}

// ParseHexString decodes s, a sequence of hexadecimal digits of either
// case, into a HexString. White space between digits is ignored and an odd
// final digit is completed with 0. Any other character makes ParseHexString
// fail with ErrInvalidHexDigits.
func ParseHexString(s string) (HexString, error) {
	b, err := encoding.Unhex([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("parse hex string: %w", err)
	}
	return HexString(b), nil
}

// TextString returns s as a text string: PDFDocEncoding when every
// character has a code there, UTF-16BE with a byte order mark otherwise.
// It is meant for document information entries such as /Title.
func TextString(s string) (HexString, error) {
	b, err := encoding.Text(s)
	if err != nil {
		return nil, fmt.Errorf("encode text string: %w", err)
	}
	return HexString(b), nil
}

// minReal is the smallest magnitude written as a nonzero real.
const minReal = 1.175e-38

// normal returns the value r is written as.
func (r Real) normal() float64 {
	v := float64(r)
	if math.Abs(v) < minReal {
		return 0
	}
	return v
}

// Equal reports whether a and b hold the same value. Only booleans,
// integers, reals, names and strings have values that compare; objects of
// different kinds are never equal and neither are arrays, dictionaries,
// streams or nulls.
func Equal(a, b Object) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

// Compare orders a and b, returning -1, 0 or +1. ok is false when a and b
// are of different kinds or of a kind without an order.
// Reals compare by the value they are written as.
func Compare(a, b Object) (c int, ok bool) {
	switch a := a.(type) {
	case Boolean:
		b, ok := b.(Boolean)
		if !ok {
			return 0, false
		}
		switch {
		case a == b:
			return 0, true
		case !bool(a):
			return -1, true
		}
		return 1, true
	case Integer:
		b, ok := b.(Integer)
		if !ok {
			return 0, false
		}
		return order(a < b, a > b), true
	case Real:
		b, ok := b.(Real)
		if !ok {
			return 0, false
		}
		x, y := a.normal(), b.normal()
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return order(x < y, x > y), true
	case Name:
		b, ok := b.(Name)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(a), string(b)), true
	case LiteralString:
		b, ok := b.(LiteralString)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(a), string(b)), true
	case HexString:
		b, ok := b.(HexString)
		if !ok {
			return 0, false
		}
		return bytes.Compare(a, b), true
	}
	return 0, false
}

func order(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}
