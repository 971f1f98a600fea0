package encoding

import (
	"errors"
	"fmt"
)

// ErrInvalidHex is returned when hexadecimal input holds a byte that is
// neither a hex digit nor white space.
var ErrInvalidHex = errors.New("invalid hex digits")

// Hex returns the uppercase hexadecimal form of b, two digits per byte.
func Hex(b []byte) string {
	out := make([]byte, 2*len(b))
	for i, c := range b {
		out[2*i] = hexDigits[c>>4]
		out[2*i+1] = hexDigits[c&0x0f]
	}
	return string(out)
}

// Unhex decodes hexadecimal digits of either case. White space between
// digits is skipped and a missing final digit is taken to be 0.
func Unhex(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)/2+1)
	hi := -1
	for i, c := range src {
		if isSpace(c) {
			continue
		}
		x := unhex(c)
		if x < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidHex, c, i)
		}
		if hi < 0 {
			hi = x
			continue
		}
		out = append(out, byte(hi<<4|x))
		hi = -1
	}
	if hi >= 0 {
		out = append(out, byte(hi<<4))
	}
	return out, nil
}

func unhex(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b) - '0'
	case 'a' <= b && b <= 'f':
		return int(b) - 'a' + 10
	case 'A' <= b && b <= 'F':
		return int(b) - 'A' + 10
	}
	return -1
}

func isSpace(b byte) bool {
	switch b {
	case '\x00', '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
