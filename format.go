package pdf

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/ScriptRock/pdfwriter/internal/encoding"
)

// maxDepth bounds the nesting of arrays and dictionaries.
const maxDepth = 256

// Format returns the text form of x, as it would appear inside a file
// written with DefaultConfig.
func Format(x Object) (string, error) {
	e := newEncoder(DefaultConfig())
	if err := e.writeObject(x, 0); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

// An encoder renders objects into buf. Offsets in the file are positions
// in buf.
type encoder struct {
	buf       bytes.Buffer
	cfg       Config
	phase     phase
	startxref int64
}

func newEncoder(cfg Config) *encoder {
	return &encoder{cfg: cfg}
}

func (e *encoder) offset() int64 { return int64(e.buf.Len()) }

func (e *encoder) writeObject(x Object, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrInvalidGraph, maxDepth)
	}
	switch x := x.(type) {
	case nil, Null:
		e.buf.WriteString("null")
	case Boolean:
		e.buf.WriteString(strconv.FormatBool(bool(x)))
	case Integer:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
	case Real:
		s, err := formatReal(x)
		if err != nil {
			return err
		}
		e.buf.WriteString(s)
	case Name:
		return e.writeName(x)
	case LiteralString:
		e.buf.WriteByte('(')
		e.buf.WriteString(encoding.Literal(string(x)))
		e.buf.WriteByte(')')
	case HexString:
		e.buf.WriteByte('<')
		e.buf.WriteString(encoding.Hex(x))
		e.buf.WriteByte('>')
	case Array:
		e.buf.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				e.buf.WriteByte(' ')
			}
			if err := e.writeObject(elem, depth+1); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	case *Dictionary:
		return e.writeDict(x, depth)
	case *Stream:
		return e.writeStream(x, depth)
	case Reference:
		fmt.Fprintf(&e.buf, "%d %d R", x.Number, x.Generation)
	default:
		return fmt.Errorf("unexpected object type %T", x)
	}
	return nil
}

func (e *encoder) writeName(n Name) error {
	if e.cfg.NameLimit > 0 && utf8.RuneCountInString(string(n)) > e.cfg.NameLimit {
		return fmt.Errorf("%w: /%s is longer than %d bytes", ErrNameTooLong, n, e.cfg.NameLimit)
	}
	s, err := encoding.Name(string(n))
	if err != nil {
		return err
	}
	e.buf.WriteByte('/')
	e.buf.WriteString(s)
	return nil
}

func (e *encoder) writeDict(d *Dictionary, depth int) error {
	e.buf.WriteString("<<\n")
	if d != nil {
		for _, k := range d.keys {
			if err := e.writeName(k); err != nil {
				return err
			}
			e.buf.WriteByte(' ')
			if err := e.writeObject(d.m[k], depth+1); err != nil {
				return err
			}
			e.buf.WriteByte('\n')
		}
	}
	e.buf.WriteString(">>")
	return nil
}

func (e *encoder) writeStream(s *Stream, depth int) error {
	if s == nil {
		return fmt.Errorf("%w: nil stream", ErrInvalidGraph)
	}
	d := NewDictionary()
	if s.dict != nil {
		d = s.dict.clone()
	}
	d.Set("Length", Integer(len(s.data)))
	if err := e.writeDict(d, depth); err != nil {
		return err
	}
	e.buf.WriteString("\nstream\n")
	e.buf.Write(s.data)
	e.buf.WriteString("\nendstream")
	return nil
}

// formatReal writes r with five fractional digits. Magnitudes below the
// smallest normal single-precision value are written as zero, and so is
// anything that rounds to zero, without a sign.
func formatReal(r Real) (string, error) {
	v := float64(r)
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat32 {
		return "", fmt.Errorf("%w: %v", ErrInvalidReal, v)
	}
	s := strconv.FormatFloat(r.normal(), 'f', 5, 64)
	if s == "-0.00000" {
		s = "0.00000"
	}
	return s, nil
}
