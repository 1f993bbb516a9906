package mediatype

//go:generate errtrace -w .

import (
	"cmp"

	"braces.dev/errtrace"
	"github.com/zeebo/xxh3"

	"github.com/JohnPeel/mediatype/internal/grammar"
	"github.com/JohnPeel/mediatype/internal/util"
)

// MaxNameLen is the maximum length of a restricted name in bytes (RFC 6838 4.2).
const MaxNameLen = grammar.MaxNameLen

// Name is a validated RFC 6838 restricted name. It is used for the type,
// subtype and suffix positions and for parameter names. A Name compares,
// orders and hashes case-insensitively but always displays its original
// bytes.
//
// The zero Name is invalid and stands for "absent" (see [MediaType.Suffix]).
type Name struct {
	s string
}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if pos, err := grammar.CheckName(s); err != nil {
		return Name{}, errtrace.Wrap(&ValidationError{Err: err, Pos: pos})
	}
	return Name{s}, nil
}

// MustName is like [NewName] but panics on invalid input. It is intended for
// well-known literals such as the tables in the names and values subpackages.
func MustName(s string) Name {
	return util.Must2(NewName(s))
}

// newNameUnchecked wraps a slice already proven valid by the grammar scanner.
// Never call it with unvalidated input.
func newNameUnchecked(s string) Name { return Name{s} }

// String returns the name as given, without case folding.
func (n Name) String() string { return n.s }

// IsZero reports whether the name is the zero value.
func (n Name) IsZero() bool { return n.s == "" }

// Equal reports whether two names match under ASCII case folding.
func (n Name) Equal(other Name) bool { return util.EqFold(n.s, other.s) }

// Compare orders names by their ASCII-lowercased bytes.
func (n Name) Compare(other Name) int { return foldCompare(n.s, other.s) }

// Hash returns a hash consistent with [Name.Equal]: names differing only in
// case hash identically.
func (n Name) Hash() uint64 {
	h := xxh3.New()
	foldWrite(h, n.s)
	return h.Sum64()
}

// MarshalText implements [encoding.TextMarshaler].
func (n Name) MarshalText() ([]byte, error) { return []byte(n.s), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (n *Name) UnmarshalText(data []byte) error {
	nn, err := NewName(string(data))
	if err != nil {
		*n = Name{}
		return errtrace.Wrap(err)
	}
	*n = nn
	return nil
}

func foldCompare(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := util.LowerByte(a[i]), util.LowerByte(b[i])
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
	}
	return cmp.Compare(len(a), len(b))
}

// foldWrite feeds s into h in ASCII-lowercased chunks without allocating.
func foldWrite(h *xxh3.Hasher, s string) {
	var buf [64]byte
	for len(s) > 0 {
		n := copy(buf[:], s)
		for i := 0; i < n; i++ {
			buf[i] = util.LowerByte(buf[i])
		}
		h.Write(buf[:n])
		s = s[n:]
	}
}
