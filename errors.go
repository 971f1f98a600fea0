package pdf

import (
	"errors"

	"github.com/ScriptRock/pdfwriter/filter"
	"github.com/ScriptRock/pdfwriter/internal/encoding"
)

// Errors reported by this package. Returned errors wrap one of these and
// are matched with errors.Is.
var (
	// ErrInvalidHexDigits is returned by ParseHexString for input that is
	// not hexadecimal.
	ErrInvalidHexDigits = filter.ErrInvalidHexDigits

	// ErrEncodingArithmetic reports an internal fault in base-85 encoding.
	ErrEncodingArithmetic = filter.ErrEncodingArithmetic

	// ErrDanglingReference is returned when a written object refers to an
	// object number the document does not define.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrIdentitySpaceExhausted is returned by Registry.Next once every
	// object number has been used.
	ErrIdentitySpaceExhausted = errors.New("object numbers exhausted")

	// ErrIO wraps a failure of the destination writer.
	ErrIO = errors.New("write failed")

	// ErrNameUnrepresentable is returned for a name holding a character
	// above U+00FF.
	ErrNameUnrepresentable = encoding.ErrUnrepresentable

	// ErrNameTooLong is returned for a name longer than Config.NameLimit.
	ErrNameTooLong = errors.New("name too long")

	// ErrInvalidReal is returned for NaN, infinities and reals beyond the
	// range a conforming reader accepts.
	ErrInvalidReal = errors.New("invalid real number")

	// ErrInvalidDefinition is returned by Document.Define for a reference
	// the document did not reserve, or one already defined.
	ErrInvalidDefinition = errors.New("invalid object definition")

	// ErrInvalidGraph is returned when an object has more than one parent,
	// a stream is not an indirect object, or nesting is too deep.
	ErrInvalidGraph = errors.New("invalid object graph")

	// ErrInvalidVersion is returned for a Config.Version that is not a PDF
	// version.
	ErrInvalidVersion = errors.New("invalid PDF version")

	// ErrPhase is returned when the parts of a file are written out of
	// order. It indicates a bug in this package.
	ErrPhase = errors.New("file sections out of order")
)
