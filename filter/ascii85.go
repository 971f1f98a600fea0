package filter

import (
	"bytes"
	"encoding/ascii85"
	"encoding/binary"
	"fmt"
)

// eod ends every ASCII base-85 encoding.
var eod = []byte("~>")

var pow85 = [5]uint32{85 * 85 * 85 * 85, 85 * 85 * 85, 85 * 85, 85, 1}

// ASCII85Encode encodes src in ASCII base-85.
//
// Each group of four bytes is read as a big-endian integer and written as
// five digits from '!' to 'u'. A complete all-zero group is written as the
// single character 'z'. A final group of n < 4 bytes is padded with zeros
// and only its first n+1 digits are written, never as 'z'. The output
// always ends with "~>", also for empty input.
func ASCII85Encode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, (len(src)+3)/4*5+len(eod))
	for len(src) > 0 {
		var group [4]byte
		n := copy(group[:], src)
		src = src[n:]

		v := binary.BigEndian.Uint32(group[:])
		if n == 4 && v == 0 {
			dst = append(dst, 'z')
			continue
		}
		digits, err := base85(v)
		if err != nil {
			return nil, err
		}
		dst = append(dst, digits[:n+1]...)
	}
	return append(dst, eod...), nil
}

// base85 converts v to five base-85 digits offset into printable ASCII.
func base85(v uint32) ([5]byte, error) {
	var digits [5]byte
	var sum uint64
	for i, p := range pow85 {
		d := v / p % 85
		digits[i] = byte(d) + '!'
		sum += uint64(d) * uint64(p)
	}
	if sum != uint64(v) {
		return digits, fmt.Errorf("%w: group %#08x", ErrEncodingArithmetic, v)
	}
	return digits, nil
}

// ASCII85Decode decodes ASCII base-85 data up to the "~>" marker.
func ASCII85Decode(src []byte) ([]byte, error) {
	if i := bytes.Index(src, eod); i >= 0 {
		src = src[:i]
	}
	// 'z' expands one byte of input to four of output.
	dst := make([]byte, 4*len(src))
	n, _, err := ascii85.Decode(dst, src, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return dst[:n], nil
}
