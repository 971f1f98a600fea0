// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdf implements writing of PDF files.
//
// # Overview
//
// A PDF file is a sequence of indirect objects, each a numbered Object,
// followed by a cross-reference table giving the byte offset of every
// object and a trailer naming the document catalog. This package builds
// that structure from values of the following types:
//
//	Null, for the null object.
//	Boolean, for a boolean value.
//	Integer, for an integer.
//	Real, for a floating-point number.
//	Name, for a name constant (as in /Helvetica).
//	LiteralString and HexString, for string constants.
//	Array, for an array of objects.
//	*Dictionary, for a dictionary of name-object pairs.
//	*Stream, for a data stream and associated header dictionary.
//	Reference, for a pointer to an indirect object.
//
// Objects become indirect when added to a Document, which numbers them
// from a Registry. Several documents may share one Registry; their object
// numbers never collide.
//
// Document.Write renders the whole file in memory and hands it to the
// destination in a single write: either the complete file is written or an
// error is returned and nothing is.
//
// Pages, fonts and content streams are built by the caller out of these
// objects; the package only knows the file structure.
package pdf

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"log/slog"

	"github.com/ScriptRock/pdfwriter/internal/xref"
)

// binaryMarker follows the version line so that transfer programs treat
// the file as binary.
const binaryMarker = "%\xE2\xE3\xCF\xD3\n"

// A phase is a section of the file. Sections are written once each, in
// order.
type phase int

const (
	phaseStart phase = iota
	phaseHeader
	phaseBody
	phaseXref
	phaseTrailer
	phaseDone
)

var phaseNames = [...]string{
	phaseStart:   "start",
	phaseHeader:  "header",
	phaseBody:    "body",
	phaseXref:    "xref",
	phaseTrailer: "trailer",
	phaseDone:    "done",
}

func (p phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (e *encoder) enter(p phase) error {
	if p != e.phase+1 {
		return fmt.Errorf("%w: %v after %v", ErrPhase, p, e.phase)
	}
	e.phase = p
	return nil
}

// WriteTo writes the document to w. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.Write(context.Background(), w)
}

// Write writes the document to w and returns the number of bytes
// written. The objects are checked first: a reference to an object the
// document does not define fails with ErrDanglingReference. If ctx is
// done before the file is complete, nothing is written and ctx's error is
// returned. A failure of w is reported wrapping ErrIO.
func (d *Document) Write(ctx context.Context, w io.Writer) (int64, error) {
	if err := d.cfg.validate(); err != nil {
		return 0, err
	}
	objects, defined, trailer := d.snapshot()
	if err := checkGraph(objects, defined, trailer); err != nil {
		return 0, err
	}

	e := newEncoder(d.cfg)
	if err := e.encode(ctx, objects, trailer); err != nil {
		return 0, err
	}

	n, err := w.Write(e.buf.Bytes())
	if err == nil && n < e.buf.Len() {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrIO, err)
	}
	slog.Debug("wrote PDF", slog.Int("objects", len(objects)), slog.Int("bytes", n))
	return int64(n), nil
}

func (e *encoder) encode(ctx context.Context, objects []indirect, trailer *Dictionary) error {
	if err := e.header(); err != nil {
		return err
	}
	table, id, err := e.body(ctx, objects)
	if err != nil {
		return err
	}
	if err := e.xref(table); err != nil {
		return err
	}
	if e.cfg.FileID {
		h := HexString(id[:])
		trailer.Set("ID", Array{h, h})
	}
	if err := e.trailer(trailer, table.Size()); err != nil {
		return err
	}
	return e.enter(phaseDone)
}

func (e *encoder) header() error {
	if err := e.enter(phaseHeader); err != nil {
		return err
	}
	fmt.Fprintf(&e.buf, "%%PDF-%s\n", e.cfg.Version)
	e.buf.WriteString(binaryMarker)
	return nil
}

// body writes the indirect objects, recording where each begins. It
// returns the offsets and the MD5 sum of the bytes written.
func (e *encoder) body(ctx context.Context, objects []indirect) (*xref.Table, [md5.Size]byte, error) {
	var table xref.Table
	if err := e.enter(phaseBody); err != nil {
		return nil, [md5.Size]byte{}, err
	}
	start := e.buf.Len()
	for _, o := range objects {
		if err := ctx.Err(); err != nil {
			return nil, [md5.Size]byte{}, err
		}
		table.Add(xref.Entry{Number: o.ref.Number, Gen: o.ref.Generation, Offset: e.offset()})
		fmt.Fprintf(&e.buf, "%d %d obj\n", o.ref.Number, o.ref.Generation)
		if err := e.writeObject(o.obj, 0); err != nil {
			return nil, [md5.Size]byte{}, fmt.Errorf("object %v: %w", o.ref, err)
		}
		e.buf.WriteString("\nendobj\n")
	}
	slog.Debug("wrote body", slog.Int("objects", table.Len()), slog.Int64("end", e.offset()))
	return &table, md5.Sum(e.buf.Bytes()[start:]), nil
}

func (e *encoder) xref(table *xref.Table) error {
	if err := e.enter(phaseXref); err != nil {
		return err
	}
	e.startxref = e.offset()
	if _, err := table.WriteTo(&e.buf); err != nil {
		return fmt.Errorf("cross-reference table: %w", err)
	}
	slog.Debug("wrote xref", slog.Int64("offset", e.startxref), slog.Int("entries", table.Len()+1))
	return nil
}

// trailer writes the trailer dictionary with /Size first, then the
// pointer to the cross-reference table and the end-of-file marker.
func (e *encoder) trailer(user *Dictionary, size int64) error {
	if err := e.enter(phaseTrailer); err != nil {
		return err
	}
	t := NewDictionary().Set("Size", Integer(size))
	for _, k := range user.keys {
		if k == "Size" {
			continue
		}
		t.Set(k, user.m[k])
	}
	e.buf.WriteString("trailer\n")
	if err := e.writeDict(t, 0); err != nil {
		return fmt.Errorf("trailer: %w", err)
	}
	fmt.Fprintf(&e.buf, "\nstartxref\n%d\n%%%%EOF\n", e.startxref)
	return nil
}
