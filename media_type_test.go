package mediatype_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/JohnPeel/mediatype"
	"github.com/JohnPeel/mediatype/names"
	"github.com/JohnPeel/mediatype/values"
)

func mustParse(t *testing.T, s string) mediatype.MediaType {
	t.Helper()
	mt, err := mediatype.Parse(s)
	if err != nil {
		t.Fatalf("mediatype.Parse(%q) error = %v", s, err)
	}
	return mt
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		str         string
		wantType    string
		wantSubtype string
		wantSuffix  string
		wantParams  [][2]string
	}{
		{
			name:     "essence",
			str:      "text/plain",
			wantType: "text", wantSubtype: "plain",
		},
		{
			name:     "suffix",
			str:      "image/svg+xml",
			wantType: "image", wantSubtype: "svg", wantSuffix: "xml",
		},
		{
			name:     "multi plus keeps last as suffix",
			str:      "application/vnd.api+ld+json",
			wantType: "application", wantSubtype: "vnd.api+ld", wantSuffix: "json",
		},
		{
			name:     "parameter",
			str:      "text/plain; charset=UTF-8",
			wantType: "text", wantSubtype: "plain",
			wantParams: [][2]string{{"charset", "UTF-8"}},
		},
		{
			name:     "case preserved",
			str:      "TEXT/Plain; CharSet=UTF-8",
			wantType: "TEXT", wantSubtype: "Plain",
			wantParams: [][2]string{{"CharSet", "UTF-8"}},
		},
		{
			name:     "quoted value decoded",
			str:      `multipart/form-data; boundary="ab \"cd\" ef"`,
			wantType: "multipart", wantSubtype: "form-data",
			wantParams: [][2]string{{"boundary", `ab "cd" ef`}},
		},
		{
			name:     "duplicates preserved in order",
			str:      "image/svg+xml; HELLO=WORLD; HELLO=world",
			wantType: "image", wantSubtype: "svg", wantSuffix: "xml",
			wantParams: [][2]string{{"HELLO", "WORLD"}, {"HELLO", "world"}},
		},
		{
			name:     "tight syntax",
			str:      "a/b;k=v;l=w",
			wantType: "a", wantSubtype: "b",
			wantParams: [][2]string{{"k", "v"}, {"l", "w"}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			mt := mustParse(t, c.str)
			if got, want := mt.Type.String(), c.wantType; got != want {
				t.Errorf("type = %q, want %q", got, want)
			}
			if got, want := mt.Subtype.String(), c.wantSubtype; got != want {
				t.Errorf("subtype = %q, want %q", got, want)
			}
			if got, want := mt.Suffix.String(), c.wantSuffix; got != want {
				t.Errorf("suffix = %q, want %q", got, want)
			}
			var params [][2]string
			for k, v := range mt.Params() {
				params = append(params, [2]string{k.String(), v.Unquoted()})
			}
			if !slices.Equal(params, c.wantParams) {
				t.Errorf("params = %v, want %v", params, c.wantParams)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		wantErr error
	}{
		{"empty", "", mediatype.ErrEmptyInput},
		{"no slash", "textplain", mediatype.ErrMissingSlash},
		{"empty subtype", "text/", mediatype.ErrEmptyName},
		{"trailing semicolon", "text/plain;", mediatype.ErrEmptyName},
		{"unterminated quote", `text/plain; charset="unterminated`, mediatype.ErrUnterminatedQuote},
		{"missing equals", "text/plain; charset utf-8", mediatype.ErrMissingEquals},
		{"empty value", "text/plain; charset=", mediatype.ErrEmptyValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := mediatype.Parse(c.str)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("mediatype.Parse(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			var perr *mediatype.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("mediatype.Parse(%q) error = %T, want *mediatype.ParseError", c.str, err)
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	t.Parallel()

	mt, n, err := mediatype.ParsePrefix("image/svg+xml; this is not a parameter")
	if err != nil {
		t.Fatalf("mediatype.ParsePrefix error = %v", err)
	}
	if got, want := n, len("image/svg+xml"); got != want {
		t.Errorf("consumed = %d, want %d", got, want)
	}
	if got, want := mt.String(), "image/svg+xml"; got != want {
		t.Errorf("prefix = %q, want %q", got, want)
	}

	if _, _, err := mediatype.ParsePrefix("image/"); !errors.Is(err, mediatype.ErrEmptyName) {
		t.Errorf("mediatype.ParsePrefix(%q) error = %v, want %v", "image/", err, mediatype.ErrEmptyName)
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"canonical stays put", "text/plain; charset=UTF-8", "text/plain; charset=UTF-8"},
		{"whitespace normalized", "a/b \t;\t k=v", "a/b; k=v"},
		{"quoted token unquoted", `a/b; k="v"`, "a/b; k=v"},
		{"quoting preserved when needed", `a/b; k="x y"`, `a/b; k="x y"`},
		{"case preserved", "TEXT/Plain; CharSet=UTF-8", "TEXT/Plain; CharSet=UTF-8"},
		{"duplicates preserved", "a/b; k=1; K=2", "a/b; k=1; K=2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			mt := mustParse(t, c.str)
			if got, want := mt.String(), c.want; got != want {
				t.Errorf("mediatype.Parse(%q).String() = %q, want %q", c.str, got, want)
			}

			again := mustParse(t, mt.String())
			if !mt.Equal(again) {
				t.Errorf("round trip of %q lost information: %q", c.str, again)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "text/plain", "text/plain", true},
		{"types fold", "TEXT/PLAIN", "text/plain", true},
		{"suffix folds", "image/svg+XML", "image/svg+xml", true},
		{"param name folds", "a/b; CHARSET=utf-8", "a/b; charset=utf-8", true},
		{"param value is case-sensitive", "a/b; charset=UTF-8", "a/b; charset=utf-8", false},
		{"quoting is irrelevant", `a/b; k="v"`, "a/b; k=v", true},
		{"different subtype", "text/plain", "text/html", false},
		{"missing suffix", "image/svg", "image/svg+xml", false},
		{"extra param", "a/b", "a/b; k=v", false},
		{"duplicate counts differ", "a/b; k=v", "a/b; k=v; k=v", false},
		{"parameter order matters", "a/b; x=1; y=2", "a/b; y=2; x=1", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			a, b := mustParse(t, c.a), mustParse(t, c.b)
			if got := a.Equal(b); got != c.want {
				t.Errorf("Parse(%q).Equal(Parse(%q)) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := b.Equal(a); got != c.want {
				t.Errorf("Parse(%q).Equal(Parse(%q)) = %v, want %v", c.b, c.a, got, c.want)
			}
			if got := a.Equal(&b); got != c.want {
				t.Errorf("Parse(%q).Equal(&Parse(%q)) = %v, want %v", c.a, c.b, got, c.want)
			}
			if c.want {
				if a.Hash() != b.Hash() {
					t.Errorf("Parse(%q).Hash() != Parse(%q).Hash()", c.a, c.b)
				}
				if a.Compare(b) != 0 {
					t.Errorf("Parse(%q).Compare(Parse(%q)) != 0", c.a, c.b)
				}
			}
		})
	}

	t.Run("foreign type", func(t *testing.T) {
		t.Parallel()

		if mustParse(t, "a/b").Equal("a/b") {
			t.Error("Equal(string) = true, want false")
		}
		if mustParse(t, "a/b").Equal(nil) {
			t.Error("Equal(nil) = true, want false")
		}
	})
}

func TestCompareOrders(t *testing.T) {
	t.Parallel()

	sorted := []string{
		"audio/mpeg",
		"image/svg",
		"image/svg+xml",
		"image/svg+xml; q=1",
		"text/plain",
		"text/plain; charset=utf-8",
	}
	for i := 1; i < len(sorted); i++ {
		a, b := mustParse(t, sorted[i-1]), mustParse(t, sorted[i])
		if a.Compare(b) >= 0 {
			t.Errorf("Parse(%q).Compare(Parse(%q)) = %d, want < 0", sorted[i-1], sorted[i], a.Compare(b))
		}
		if b.Compare(a) <= 0 {
			t.Errorf("Parse(%q).Compare(Parse(%q)) = %d, want > 0", sorted[i], sorted[i-1], b.Compare(a))
		}
	}
}

func TestGetParamLastWriteWins(t *testing.T) {
	t.Parallel()

	mt := mustParse(t, "image/svg+xml; charset=UTF-8; HELLO=WORLD; HELLO=world")

	v, ok := mt.GetParam(mediatype.MustName("hello"))
	if !ok {
		t.Fatal("GetParam(hello) not found")
	}
	if got, want := v.Unquoted(), "world"; got != want {
		t.Errorf("GetParam(hello) = %q, want %q", got, want)
	}

	if _, ok := mt.GetParam(mediatype.MustName("missing")); ok {
		t.Error("GetParam(missing) found, want not found")
	}
}

func TestSetParam(t *testing.T) {
	t.Parallel()

	mt := mediatype.FromParts(names.Text, names.Plain, mediatype.Name{}, []mediatype.Param{
		{Key: mediatype.MustName("CHARSET"), Value: values.UTF8},
	})

	// replacing folds the key and moves the entry to the end
	mt.SetParam(names.Charset, mediatype.MustValue("utf-8"))
	if got, want := mt.String(), "text/plain; charset=utf-8"; got != want {
		t.Errorf("after replace: %q, want %q", got, want)
	}

	mt.SetParam(mediatype.MustName("ALICE"), mediatype.MustValue("bob"))
	mt.SetParam(mediatype.MustName("ALICE"), mediatype.MustValue("bob"))
	if got, want := mt.String(), "text/plain; charset=utf-8; ALICE=bob"; got != want {
		t.Errorf("after set twice: %q, want %q", got, want)
	}

	// replacing collapses every duplicate into one trailing entry
	dup := mustParse(t, "a/b; k=1; x=0; K=2")
	dup.SetParam(mediatype.MustName("k"), mediatype.MustValue("3"))
	if got, want := dup.String(), "a/b; x=0; k=3"; got != want {
		t.Errorf("after duplicate replace: %q, want %q", got, want)
	}
}

func TestRemoveParams(t *testing.T) {
	t.Parallel()

	mt := mustParse(t, "image/svg+xml; hello=WORLD; charset=UTF-8; HELLO=WORLD")
	mt.RemoveParams(mediatype.MustName("hello"))
	if got, want := mt.String(), "image/svg+xml; charset=UTF-8"; got != want {
		t.Errorf("after remove: %q, want %q", got, want)
	}

	// removing an absent key is a no-op
	mt.RemoveParams(mediatype.MustName("hello"))
	if got, want := mt.String(), "image/svg+xml; charset=UTF-8"; got != want {
		t.Errorf("after second remove: %q, want %q", got, want)
	}
}

func TestClearParams(t *testing.T) {
	t.Parallel()

	mt := mustParse(t, "text/plain; charset=utf-8; q=1")
	mt.ClearParams()
	if got, want := mt.String(), "text/plain"; got != want {
		t.Errorf("after clear: %q, want %q", got, want)
	}
	mt.ClearParams()
	if got, want := mt.String(), "text/plain"; got != want {
		t.Errorf("after second clear: %q, want %q", got, want)
	}
}

func TestFromPartsDoesNotMutateCaller(t *testing.T) {
	t.Parallel()

	params := []mediatype.Param{
		{Key: names.Charset, Value: values.UTF8},
		{Key: names.Q, Value: mediatype.MustValue("1")},
	}
	mt := mediatype.FromParts(names.Text, names.Plain, mediatype.Name{}, params)

	mt.SetParam(names.Charset, mediatype.MustValue("ascii"))
	mt.RemoveParams(names.Q)

	if got, want := params[0].Value.Unquoted(), "UTF-8"; got != want {
		t.Errorf("caller slice was mutated: params[0].Value = %q, want %q", got, want)
	}
	if got, want := len(params), 2; got != want {
		t.Errorf("caller slice was resized: len = %d, want %d", got, want)
	}
}

func TestCloneIsolatesMutation(t *testing.T) {
	t.Parallel()

	orig := mustParse(t, "text/plain; charset=utf-8")
	clone := orig.Clone()

	clone.SetParam(names.Charset, mediatype.MustValue("ascii"))
	if got, want := orig.String(), "text/plain; charset=utf-8"; got != want {
		t.Errorf("original changed after clone mutation: %q, want %q", got, want)
	}
	if got, want := clone.String(), "text/plain; charset=ascii"; got != want {
		t.Errorf("clone = %q, want %q", got, want)
	}

	// and the other direction
	orig2 := mustParse(t, "text/plain; charset=utf-8")
	clone2 := orig2.Clone()
	orig2.RemoveParams(names.Charset)
	if got, want := clone2.String(), "text/plain; charset=utf-8"; got != want {
		t.Errorf("clone changed after original mutation: %q, want %q", got, want)
	}
}

func TestValueCopyIsolatesMutation(t *testing.T) {
	t.Parallel()

	t.Run("remove on copy", func(t *testing.T) {
		t.Parallel()

		orig := mustParse(t, "a/b; k=1; l=2")
		copied := orig
		copied.RemoveParams(mediatype.MustName("k"))
		if got, want := orig.String(), "a/b; k=1; l=2"; got != want {
			t.Errorf("original changed after copy mutation: %q, want %q", got, want)
		}
		if got, want := copied.String(), "a/b; l=2"; got != want {
			t.Errorf("copy = %q, want %q", got, want)
		}
		if _, err := mediatype.Parse(orig.String()); err != nil {
			t.Errorf("original no longer round-trips: %v", err)
		}
	})

	t.Run("set existing key on copy", func(t *testing.T) {
		t.Parallel()

		orig := mustParse(t, "a/b; k=1; l=2")
		copied := orig
		copied.SetParam(mediatype.MustName("k"), mediatype.MustValue("9"))
		if got, want := orig.String(), "a/b; k=1; l=2"; got != want {
			t.Errorf("original changed after copy mutation: %q, want %q", got, want)
		}
		if got, want := copied.String(), "a/b; l=2; k=9"; got != want {
			t.Errorf("copy = %q, want %q", got, want)
		}
	})

	t.Run("both sides append", func(t *testing.T) {
		t.Parallel()

		orig := mustParse(t, "a/b; k=1")
		copied := orig
		orig.SetParam(mediatype.MustName("x"), mediatype.MustValue("1"))
		copied.SetParam(mediatype.MustName("y"), mediatype.MustValue("2"))
		if got, want := orig.String(), "a/b; k=1; x=1"; got != want {
			t.Errorf("first side = %q, want %q", got, want)
		}
		if got, want := copied.String(), "a/b; k=1; y=2"; got != want {
			t.Errorf("second side = %q, want %q", got, want)
		}
	})

	t.Run("clear on copy", func(t *testing.T) {
		t.Parallel()

		orig := mustParse(t, "a/b; k=1")
		copied := orig
		copied.ClearParams()
		if got, want := orig.String(), "a/b; k=1"; got != want {
			t.Errorf("original changed after copy mutation: %q, want %q", got, want)
		}
		if got, want := copied.String(), "a/b"; got != want {
			t.Errorf("copy = %q, want %q", got, want)
		}
	})
}

func TestParamsIteratorRestartable(t *testing.T) {
	t.Parallel()

	mt := mustParse(t, "a/b; x=1; y=2")
	seq := mt.Params()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if got, want := count(), 2; got != want {
		t.Fatalf("first pass yielded %d pairs, want %d", got, want)
	}
	if got, want := count(), 2; got != want {
		t.Errorf("second pass yielded %d pairs, want %d", got, want)
	}

	// early break must not panic or skew later passes
	for range seq {
		break
	}
	if got, want := count(), 2; got != want {
		t.Errorf("pass after break yielded %d pairs, want %d", got, want)
	}
}

func TestIsValidIsZero(t *testing.T) {
	t.Parallel()

	var zero mediatype.MediaType
	if zero.IsValid() {
		t.Error("zero MediaType reported valid")
	}
	if !zero.IsZero() {
		t.Error("zero MediaType reported non-zero")
	}

	mt := mediatype.New(names.Text, names.Plain)
	if !mt.IsValid() {
		t.Error("text/plain reported invalid")
	}
	if mt.IsZero() {
		t.Error("text/plain reported zero")
	}

	half := mediatype.MediaType{Type: names.Text}
	if half.IsValid() {
		t.Error("type-only MediaType reported valid")
	}
}

func TestMediaTypeUnmarshalText(t *testing.T) {
	t.Parallel()

	var mt mediatype.MediaType
	if err := mt.UnmarshalText([]byte("text/plain; charset=utf-8")); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if got, want := mt.String(), "text/plain; charset=utf-8"; got != want {
		t.Errorf("unmarshaled = %q, want %q", got, want)
	}

	data, err := mt.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error = %v", err)
	}
	if got, want := string(data), "text/plain; charset=utf-8"; got != want {
		t.Errorf("marshaled = %q, want %q", got, want)
	}

	// empty input resets to zero without error
	if err := mt.UnmarshalText(nil); err != nil {
		t.Fatalf("UnmarshalText(empty) error = %v", err)
	}
	if !mt.IsZero() {
		t.Errorf("after empty unmarshal = %q, want zero", mt)
	}

	if err := mt.UnmarshalText([]byte("nonsense")); !errors.Is(err, mediatype.ErrMissingSlash) {
		t.Fatalf("UnmarshalText(nonsense) error = %v, want %v", err, mediatype.ErrMissingSlash)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	mt := mustParse(t, "image/svg+xml; charset=UTF-8")
	if got, want := fmt.Sprintf("%s", mt), "image/svg+xml; charset=UTF-8"; got != want {
		t.Errorf("%%s = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%v", mt), "image/svg+xml; charset=UTF-8"; got != want {
		t.Errorf("%%v = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", mt), `"image/svg+xml; charset=UTF-8"`; got != want {
		t.Errorf("%%q = %q, want %q", got, want)
	}
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"text/plain",
		"image/svg+xml",
		"text/plain; charset=UTF-8",
		`multipart/form-data; boundary="ab \"cd\" ef"`,
		"a/b;k=v;k=w",
		"a/b \t; \tk=v",
		"textplain",
		"text/",
		"text/plain;",
		`text/plain; charset="unterminated`,
		"*/*",
		"a/b; k=\x00",
		"\xff\xfe",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		mt, err := mediatype.Parse(input)
		if err != nil {
			var perr *mediatype.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Parse(%q) error = %T, want *mediatype.ParseError", input, err)
			}
			return
		}

		// anything that parses must render to text that re-parses equal
		out := mt.String()
		again, err := mediatype.Parse(out)
		if err != nil {
			t.Fatalf("Parse(%q).String() = %q does not re-parse: %v", input, out, err)
		}
		if !mt.Equal(again) {
			t.Errorf("round trip of %q via %q is not equal", input, out)
		}
		if mt.Hash() != again.Hash() {
			t.Errorf("round trip of %q via %q changed the hash", input, out)
		}
	})
}
