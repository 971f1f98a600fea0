package pdf

import (
	"fmt"

	"github.com/ScriptRock/pdfwriter/filter"
)

// A Stream is a dictionary followed by a sequence of bytes. The stream
// maintains the dictionary's /Length entry; whatever the caller stores
// there is replaced by the length of the data when the stream is written.
//
// A Stream can only be written as an indirect object: add it to a Document
// and refer to it by Reference. The zero value is an empty stream.
type Stream struct {
	dict *Dictionary
	data []byte
}

// NewStream returns a stream holding data, described by dict.
// A nil dict is replaced by an empty one.
func NewStream(dict *Dictionary, data []byte) *Stream {
	if dict == nil {
		dict = NewDictionary()
	}
	s := &Stream{dict: dict, data: data}
	s.syncLength()
	return s
}

// NewEncodedStream returns a stream holding data encoded with filters.
// The filters are listed in the order a reader applies them to decode the
// data, the order they appear in the /Filter entry, so the last one is
// applied first here. An ASCIIHex stage is terminated with '>'.
func NewEncodedStream(dict *Dictionary, data []byte, filters ...filter.Type) (*Stream, error) {
	for i := len(filters) - 1; i >= 0; i-- {
		f := filters[i]
		enc, err := f.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("encode stream with %v: %w", f, err)
		}
		if f == filter.ASCIIHex {
			enc = append(enc, '>')
		}
		data = enc
	}

	if dict == nil {
		dict = NewDictionary()
	}
	switch len(filters) {
	case 0:
	case 1:
		dict.Set("Filter", Name(filters[0].String()))
	default:
		names := make(Array, len(filters))
		for i, f := range filters {
			names[i] = Name(f.String())
		}
		dict.Set("Filter", names)
	}
	return NewStream(dict, data), nil
}

// Dict returns the stream dictionary.
func (s *Stream) Dict() *Dictionary {
	if s.dict == nil {
		s.dict = NewDictionary()
	}
	return s.dict
}

// Data returns the stream content as it will be written.
func (s *Stream) Data() []byte { return s.data }

// SetData replaces the stream content.
func (s *Stream) SetData(data []byte) {
	s.data = data
	s.syncLength()
}

func (s *Stream) syncLength() {
	if s.dict == nil {
		s.dict = NewDictionary()
	}
	s.dict.Set("Length", Integer(len(s.data)))
}
