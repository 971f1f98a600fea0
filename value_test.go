package pdf

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	testCases := map[string]struct {
		input Object
		want  Kind
	}{
		"null":       {input: Null{}, want: NullKind},
		"boolean":    {input: Boolean(true), want: BooleanKind},
		"integer":    {input: Integer(1), want: IntegerKind},
		"real":       {input: Real(1), want: RealKind},
		"name":       {input: Name("N"), want: NameKind},
		"literal":    {input: LiteralString("s"), want: LiteralStringKind},
		"hex":        {input: HexString("s"), want: HexStringKind},
		"array":      {input: Array{}, want: ArrayKind},
		"dictionary": {input: NewDictionary(), want: DictionaryKind},
		"stream":     {input: NewStream(nil, nil), want: StreamKind},
		"reference":  {input: Reference{Number: 1}, want: ReferenceKind},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := tc.input.Kind(); got != tc.want {
				t.Errorf("got kind %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := LiteralStringKind.String(); got != "literal string" {
		t.Errorf("got %q", got)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("got %q", got)
	}
}

func TestCompare(t *testing.T) {
	testCases := map[string]struct {
		a, b   Object
		want   int
		wantOK bool
	}{
		"equal booleans":     {a: Boolean(true), b: Boolean(true), want: 0, wantOK: true},
		"false before true":  {a: Boolean(false), b: Boolean(true), want: -1, wantOK: true},
		"true after false":   {a: Boolean(true), b: Boolean(false), want: 1, wantOK: true},
		"integers":           {a: Integer(1), b: Integer(2), want: -1, wantOK: true},
		"equal integers":     {a: Integer(-7), b: Integer(-7), want: 0, wantOK: true},
		"reals":              {a: Real(2.5), b: Real(1), want: 1, wantOK: true},
		"subnormal is zero":  {a: Real(1e-40), b: Real(0), want: 0, wantOK: true},
		"NaN":                {a: Real(0), b: Real(math.NaN()), wantOK: false},
		"names":              {a: Name("A"), b: Name("B"), want: -1, wantOK: true},
		"literal strings":    {a: LiteralString("b"), b: LiteralString("a"), want: 1, wantOK: true},
		"hex strings":        {a: HexString("ab"), b: HexString("ab"), want: 0, wantOK: true},
		"integer and real":   {a: Integer(1), b: Real(1), wantOK: false},
		"name and literal":   {a: Name("a"), b: LiteralString("a"), wantOK: false},
		"literal and hex":    {a: LiteralString("a"), b: HexString("a"), wantOK: false},
		"arrays":             {a: Array{}, b: Array{}, wantOK: false},
		"dictionaries":       {a: NewDictionary(), b: NewDictionary(), wantOK: false},
		"nulls":              {a: Null{}, b: Null{}, wantOK: false},
		"references":         {a: Reference{Number: 1}, b: Reference{Number: 1}, wantOK: false},
		"nil":                {a: nil, b: nil, wantOK: false},
		"boolean and nil":    {a: Boolean(true), b: nil, wantOK: false},
		"name and reference": {a: Name("R"), b: Reference{Number: 1}, wantOK: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, ok := Compare(tc.a, tc.b)
			if ok != tc.wantOK {
				t.Fatalf("got ok %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
			if eq := Equal(tc.a, tc.b); eq != (tc.wantOK && tc.want == 0) {
				t.Errorf("Equal = %v", eq)
			}
		})
	}
}

func TestParseHexString(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  HexString
	}{
		"empty":      {input: "", want: HexString{}},
		"upper":      {input: "666F6F626172", want: HexString("foobar")},
		"lower":      {input: "666f6f626172", want: HexString("foobar")},
		"whitespace": {input: "66 6F\n6F", want: HexString("foo")},
		"odd":        {input: "901FA", want: HexString{0x90, 0x1F, 0xA0}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHexString(tc.input)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if diff := cmp.Diff(got, tc.want, hexEqual); diff != "" {
				t.Error("parsed hex string did not match expectations:", diff)
			}
		})
	}
}

var hexEqual = cmp.Comparer(func(a, b HexString) bool { return string(a) == string(b) })

func TestParseHexString_invalid(t *testing.T) {
	for _, s := range []string{"6G", "zz", "66>", "0x66"} {
		if _, err := ParseHexString(s); !errors.Is(err, ErrInvalidHexDigits) {
			t.Errorf("ParseHexString(%q) error = %v, want ErrInvalidHexDigits", s, err)
		}
	}
}

func TestTextString(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  string
	}{
		"ascii":  {input: "Title", want: "<5469746C65>"},
		"latin1": {input: "Café", want: "<436166E9>"},
		"utf16":  {input: "日本", want: "<FEFF65E5672C>"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			s, err := TextString(tc.input)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			got, err := Format(s)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Error("text string did not match expectations:", diff)
			}
		})
	}
}
