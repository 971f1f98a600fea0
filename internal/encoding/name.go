// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnrepresentable is returned for names holding characters above U+00FF,
// which have no single-byte form.
var ErrUnrepresentable = errors.New("character not representable in a name")

const hexDigits = "0123456789ABCDEF"

// Name returns s escaped for use after the slash of a name token.
//
// Regular characters in the range '!' to '~' are written as themselves.
// The number sign, the delimiters and every other byte (whitespace, control
// characters, Latin-1 letters) are written as '#' followed by two
// hexadecimal digits, so "Lime Green" becomes "Lime#20Green".
func Name(s string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnrepresentable, s)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isRegular(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('#')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String(), nil
}

func isRegular(c byte) bool {
	return '!' <= c && c <= '~' && c != '#' && !isDelim(c)
}

func isDelim(c byte) bool {
	switch c {
	case '<', '>', '(', ')', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
