package pdf

import (
	"testing"

	"github.com/ScriptRock/pdfwriter/filter"
	"github.com/google/go-cmp/cmp"
)

func TestStream_length(t *testing.T) {
	s := NewStream(NewDictionary().Set("Length", Integer(99)).Set("Type", Name("XObject")), []byte("hello"))
	if v, _ := s.Dict().Get("Length"); v != Integer(5) {
		t.Errorf("got /Length %v after construction, want 5", v)
	}

	s.SetData([]byte("hello, world"))
	if v, _ := s.Dict().Get("Length"); v != Integer(12) {
		t.Errorf("got /Length %v after SetData, want 12", v)
	}

	s.Dict().Set("Length", Integer(1))
	got, err := Format(s)
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n/Length 12\n/Type /XObject\n>>\nstream\nhello, world\nendstream"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Error("stream did not match expectations:", diff)
	}
	if v, _ := s.Dict().Get("Length"); v != Integer(1) {
		t.Error("writing changed the stream dictionary")
	}

	s.Dict().Delete("Length")
	got, err = Format(s)
	if err != nil {
		t.Fatal(err)
	}
	want = "<<\n/Type /XObject\n/Length 12\n>>\nstream\nhello, world\nendstream"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Error("stream without /Length did not match expectations:", diff)
	}
}

func TestNewEncodedStream(t *testing.T) {
	testCases := map[string]struct {
		filters []filter.Type
		want    string
	}{
		"no filter": {
			want: "<<\n/Length 3\n>>\nstream\nabc\nendstream",
		},
		"hex": {
			filters: []filter.Type{filter.ASCIIHex},
			want:    "<<\n/Filter /ASCIIHexDecode\n/Length 7\n>>\nstream\n616263>\nendstream",
		},
		"base-85": {
			filters: []filter.Type{filter.ASCII85},
			want:    "<<\n/Filter /ASCII85Decode\n/Length 6\n>>\nstream\n@:E^~>\nendstream",
		},
		"hex of base-85": {
			filters: []filter.Type{filter.ASCIIHex, filter.ASCII85},
			want:    "<<\n/Filter [/ASCIIHexDecode /ASCII85Decode]\n/Length 13\n>>\nstream\n403A455E7E3E>\nendstream",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			s, err := NewEncodedStream(nil, []byte("abc"), tc.filters...)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			got, err := Format(s)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Error("encoded stream did not match expectations:", diff)
			}
		})
	}
}

func TestNewEncodedStream_decodes(t *testing.T) {
	src := []byte("BT /F1 12 Tf 72 712 Td (A stream of text) Tj ET\n")
	filters := []filter.Type{filter.ASCII85, filter.Flate}
	s, err := NewEncodedStream(NewDictionary(), src, filters...)
	if err != nil {
		t.Fatal(err)
	}

	data := s.Data()
	for _, f := range filters {
		data, err = f.Decode(data)
		if err != nil {
			t.Fatalf("decode %v: %v", f, err)
		}
	}
	if diff := cmp.Diff(string(data), string(src)); diff != "" {
		t.Error("decoded stream did not match source:", diff)
	}
	if v, _ := s.Dict().Get("Length"); v != Integer(len(s.Data())) {
		t.Errorf("got /Length %v, want %d", v, len(s.Data()))
	}
}

func TestNewEncodedStream_unsupported(t *testing.T) {
	if _, err := NewEncodedStream(nil, []byte("abc"), filter.Type(9)); err == nil {
		t.Error("expected an error for an unknown filter")
	}
}

func TestStream_zeroValue(t *testing.T) {
	var s Stream
	if v, _ := s.Dict().Get("Length"); v != nil {
		t.Errorf("got /Length %v on an empty stream", v)
	}
	s.SetData([]byte("hello"))
	if v, _ := s.Dict().Get("Length"); v != Integer(5) {
		t.Errorf("got /Length %v after SetData, want 5", v)
	}

	got, err := Format(new(Stream))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, "<<\n/Length 0\n>>\nstream\n\nendstream"); diff != "" {
		t.Error("zero stream did not match expectations:", diff)
	}
}
