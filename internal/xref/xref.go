// Package xref records where indirect objects start in an output file and
// writes the cross-reference section (ISO 32000-1:2008, §7.5.4).
package xref

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
)

// maxOffset is the largest offset that fits the 10 digit field.
const maxOffset = 9999999999

// freeHead is the entry for object 0, the head of the free list.
const freeHead = "0000000000 65535 f \n"

// ErrOffsetRange is returned for offsets that do not fit in 10 digits.
var ErrOffsetRange = errors.New("offset does not fit in a cross-reference entry")

// ErrDuplicate is returned when two entries claim the same object number,
// or an entry claims object 0.
var ErrDuplicate = errors.New("duplicate cross-reference entry")

// An Entry locates one in-use object.
type Entry struct {
	Number uint32
	Gen    uint16
	Offset int64
}

// A Table collects entries while a file body is written.
// The zero Table is empty and ready to use.
type Table struct {
	entries []Entry
}

// Add records e.
func (t *Table) Add(e Entry) {
	t.entries = append(t.entries, e)
}

// Len returns the number of recorded entries.
func (t *Table) Len() int { return len(t.entries) }

// Size returns the value of the trailer's /Size entry: one more than the
// highest object number.
func (t *Table) Size() int64 {
	var highest uint32
	for _, e := range t.entries {
		if e.Number > highest {
			highest = e.Number
		}
	}
	return int64(highest) + 1
}

// WriteTo writes the cross-reference section, starting with the "xref"
// keyword. Entries are sorted by object number and grouped into
// subsections of consecutive numbers; object 0 always leads the first one.
// Every entry line is exactly 20 bytes long.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	entries := slices.Clone(t.entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	})

	for i, e := range entries {
		if e.Number == 0 || i > 0 && e.Number == entries[i-1].Number {
			return 0, fmt.Errorf("%w: object %d", ErrDuplicate, e.Number)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("xref\n")

	// The free list head starts a subsection at 0 which absorbs the
	// objects numbered 1, 2, ... that follow without a gap.
	i := 0
	for i < len(entries) && entries[i].Number == uint32(i)+1 {
		i++
	}
	if err := writeSubsection(&buf, 0, entries[:i], true); err != nil {
		return 0, err
	}

	for i < len(entries) {
		j := i + 1
		for j < len(entries) && entries[j].Number == entries[j-1].Number+1 {
			j++
		}
		if err := writeSubsection(&buf, entries[i].Number, entries[i:j], false); err != nil {
			return 0, err
		}
		i = j
	}

	return buf.WriteTo(w)
}

func writeSubsection(buf *bytes.Buffer, start uint32, entries []Entry, head bool) error {
	n := len(entries)
	if head {
		n++
	}
	fmt.Fprintf(buf, "%d %d\n", start, n)
	if head {
		buf.WriteString(freeHead)
	}
	for _, e := range entries {
		if e.Offset < 0 || e.Offset > maxOffset {
			return fmt.Errorf("%w: object %d at %d", ErrOffsetRange, e.Number, e.Offset)
		}
		fmt.Fprintf(buf, "%010d %05d n \n", e.Offset, e.Gen)
	}
	return nil
}
