package filter

import (
	"bytes"

	"github.com/ScriptRock/pdfwriter/internal/encoding"
)

// ASCIIHexEncode writes each byte of src as two uppercase hexadecimal
// digits. No end-of-data marker is added; a stream that stores the result
// appends '>' itself.
func ASCIIHexEncode(src []byte) []byte {
	return []byte(encoding.Hex(src))
}

// ASCIIHexDecode decodes hexadecimal digits up to an optional '>' marker.
// White space is ignored and an odd final digit is completed with 0.
func ASCIIHexDecode(src []byte) ([]byte, error) {
	if i := bytes.IndexByte(src, '>'); i >= 0 {
		src = src[:i]
	}
	return encoding.Unhex(src)
}
