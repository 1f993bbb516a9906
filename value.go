package mediatype

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/zeebo/xxh3"

	"github.com/JohnPeel/mediatype/internal/grammar"
	"github.com/JohnPeel/mediatype/internal/util"
)

// Value is a validated parameter value. The decoded content is stored; an
// internal tag records whether the original textual form was a quoted string.
//
// Values are case-sensitive: unlike [Name], two Values built from
// differently-cased text are not equal. Only names fold case.
type Value struct {
	s      string
	quoted bool
}

// NewValue validates s against the parameter value grammar. Token-safe input
// is stored as a bare token. Input starting with '"' must be a well-formed
// quoted string; it is stored decoded. Anything else is a validation error —
// use [QuoteValue] to wrap arbitrary raw content instead.
func NewValue(s string) (Value, error) {
	if len(s) == 0 {
		return Value{}, errtrace.Wrap(&ValidationError{Err: grammar.ErrEmptyValue})
	}
	if s[0] == '"' {
		dec, ok := grammar.Unquote(s)
		if !ok {
			return Value{}, errtrace.Wrap(&ValidationError{Err: grammar.ErrUnterminatedQuote})
		}
		return Value{s: dec, quoted: true}, nil
	}
	for i := 0; i < len(s); i++ {
		if !grammar.IsTokenByte(s[i]) {
			return Value{}, errtrace.Wrap(&ValidationError{Err: grammar.ErrInvalidChar, Pos: i})
		}
	}
	return Value{s: s}, nil
}

// MustValue is like [NewValue] but panics on invalid input.
func MustValue(s string) Value {
	return util.Must2(NewValue(s))
}

// QuoteValue wraps arbitrary content in a Value. The content is taken
// verbatim and rendered as a quoted string whenever it is not token-safe.
func QuoteValue(s string) Value { return Value{s: s, quoted: true} }

// newValueUnchecked wraps a value slice already proven valid by the grammar
// scanner. Quoted values arrive with their surrounding quotes and are decoded
// here.
func newValueUnchecked(raw string) Value {
	if raw[0] == '"' {
		dec, _ := grammar.Unquote(raw)
		return Value{s: dec, quoted: true}
	}
	return Value{s: raw}
}

// String renders the value: bare when the content is token-safe, otherwise
// quoted with '"' and '\' backslash-escaped.
func (v Value) String() string {
	if grammar.IsToken(v.s) {
		return v.s
	}
	return grammar.Quote(v.s)
}

// Unquoted returns the decoded content bytes.
func (v Value) Unquoted() string { return v.s }

// IsZero reports whether the value is the zero value.
func (v Value) IsZero() bool { return v.s == "" && !v.quoted }

// Equal compares decoded content bytes, case-sensitively.
func (v Value) Equal(other Value) bool { return v.s == other.s }

// Compare orders values by decoded content bytes.
func (v Value) Compare(other Value) int { return strings.Compare(v.s, other.s) }

// Hash returns a hash consistent with [Value.Equal].
func (v Value) Hash() uint64 { return xxh3.HashString(v.s) }

// MarshalText implements [encoding.TextMarshaler].
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Value) UnmarshalText(data []byte) error {
	vv, err := NewValue(string(data))
	if err != nil {
		*v = Value{}
		return errtrace.Wrap(err)
	}
	*v = vv
	return nil
}
