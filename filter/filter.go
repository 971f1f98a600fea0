// Package filter implements the ASCII and compression filters that turn
// stream content into the encoded form stored in a PDF file, together with
// their inverses.
//
// Encoders follow ISO 32000-1:2008, §7.4. The decoders exist so that encoded
// data can be checked against its source; they accept what the encoders
// produce plus the white space a file may legitimately contain.
package filter

import (
	"errors"
	"fmt"

	"github.com/ScriptRock/pdfwriter/internal/encoding"
)

var (
	// ErrInvalidHexDigits is returned when hexadecimal input holds
	// characters outside [0-9a-fA-F] and white space.
	ErrInvalidHexDigits = encoding.ErrInvalidHex

	// ErrEncodingArithmetic reports a base-85 group whose digits do not add
	// back up to the group's value. It indicates a bug, not bad input.
	ErrEncodingArithmetic = errors.New("base-85 group conversion fault")

	// ErrMalformed is returned by decoders for input no encoder produces.
	ErrMalformed = errors.New("malformed encoded data")
)

// A Type identifies one of the standard filters.
type Type int

const (
	ASCIIHex Type = iota + 1
	ASCII85
	Flate
)

// String returns the filter name as used in a stream's /Filter entry.
func (t Type) String() string {
	switch t {
	case ASCIIHex:
		return "ASCIIHexDecode"
	case ASCII85:
		return "ASCII85Decode"
	case Flate:
		return "FlateDecode"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Encode applies the filter to src.
func (t Type) Encode(src []byte) ([]byte, error) {
	switch t {
	case ASCIIHex:
		return ASCIIHexEncode(src), nil
	case ASCII85:
		return ASCII85Encode(src)
	case Flate:
		return FlateEncode(src)
	default:
		return nil, fmt.Errorf("unsupported filter %v", t)
	}
}

// Decode reverses Encode.
func (t Type) Decode(src []byte) ([]byte, error) {
	switch t {
	case ASCIIHex:
		return ASCIIHexDecode(src)
	case ASCII85:
		return ASCII85Decode(src)
	case Flate:
		return FlateDecode(src)
	default:
		return nil, fmt.Errorf("unsupported filter %v", t)
	}
}
