// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// IsPDFDocEncodable reports whether every character of s has the same code
// in PDFDocEncoding as in Latin-1.
func IsPDFDocEncodable(s string) bool {
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case 0x20 <= r && r <= 0x7e:
		case 0xa1 <= r && r <= 0xff && r != 0xad:
		default:
			return false
		}
	}
	return true
}

// IsUTF16 reports whether s starts with the big-endian byte order mark used
// by UTF-16 text strings.
func IsUTF16(s string) bool {
	return len(s) >= 2 && s[0] == 0xfe && s[1] == 0xff && len(s)%2 == 0
}

// Text returns the bytes of a text string holding s, normalized to NFC.
// PDFDocEncoding is used when it can hold every character, UTF-16BE with a
// byte order mark otherwise. A string that is already UTF-16BE with a byte
// order mark is returned unchanged.
func Text(s string) ([]byte, error) {
	if IsUTF16(s) {
		return []byte(s), nil
	}
	s = norm.NFC.String(s)
	if IsPDFDocEncodable(s) {
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	}
	return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
}
