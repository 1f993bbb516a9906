package mediatype

import (
	"io"
	"iter"

	"braces.dev/errtrace"

	"github.com/JohnPeel/mediatype/internal/grammar"
	"github.com/JohnPeel/mediatype/internal/ioutil"
	"github.com/JohnPeel/mediatype/internal/util"
)

// MediaTypeBuf is the owned, self-contained counterpart of [MediaType]: a
// single buffer holding the serialized form plus the validated field offsets
// into it. It is immutable and exposes only the read capability; use
// [MediaTypeBuf.ToRef] to obtain a mutable view, and [FromMediaType] to come
// back.
type MediaTypeBuf struct {
	s      string
	idx    grammar.Indices
	params []Param
}

// NewMediaTypeBuf parses s into an owned MediaTypeBuf.
func NewMediaTypeBuf(s string) (*MediaTypeBuf, error) {
	idx, err := grammar.Scan(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return newBuf(s, idx), nil
}

// FromMediaType serializes mt into an owned buffer. Every constructible
// MediaType serializes to re-parseable text, so this cannot fail.
func FromMediaType(mt MediaType) *MediaTypeBuf {
	s := mt.String()
	return newBuf(s, util.Must2(grammar.Scan(s)))
}

func newBuf(s string, idx grammar.Indices) *MediaTypeBuf {
	b := &MediaTypeBuf{s: s, idx: idx}
	if len(idx.Params) > 0 {
		b.params = make([]Param, len(idx.Params))
		for i, pr := range idx.Params {
			b.params[i] = Param{
				Key:   newNameUnchecked(sliceRange(s, pr.Name)),
				Value: newValueUnchecked(sliceRange(s, pr.Value)),
			}
		}
	}
	return b
}

// ToRef returns a MediaType view over the buffer. The view borrows the
// parameter backbone: it may be mutated freely, mutation works on a
// private copy, and the buffer is never affected.
func (b *MediaTypeBuf) ToRef() MediaType {
	mt := MediaType{
		Type:    newNameUnchecked(sliceRange(b.s, b.idx.Type)),
		Subtype: newNameUnchecked(sliceRange(b.s, b.idx.Subtype)),
		params:  paramSeq{list: b.params},
	}
	if !b.idx.Suffix.IsZero() {
		mt.Suffix = newNameUnchecked(sliceRange(b.s, b.idx.Suffix))
	}
	return mt
}

// Type returns the top-level type.
func (b *MediaTypeBuf) Type() Name { return newNameUnchecked(sliceRange(b.s, b.idx.Type)) }

// Subtype returns the subtype.
func (b *MediaTypeBuf) Subtype() Name { return newNameUnchecked(sliceRange(b.s, b.idx.Subtype)) }

// Suffix returns the structured syntax suffix, zero when absent.
func (b *MediaTypeBuf) Suffix() Name {
	if b.idx.Suffix.IsZero() {
		return Name{}
	}
	return newNameUnchecked(sliceRange(b.s, b.idx.Suffix))
}

// Params yields the parameters in storage order, duplicates included.
func (b *MediaTypeBuf) Params() iter.Seq2[Name, Value] {
	params := b.params
	return func(yield func(Name, Value) bool) {
		for _, p := range params {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// GetParam returns the value of the last parameter matching key,
// case-insensitively ("last write wins").
func (b *MediaTypeBuf) GetParam(key Name) (Value, bool) {
	for i := len(b.params) - 1; i >= 0; i-- {
		if b.params[i].Key.Equal(key) {
			return b.params[i].Value, true
		}
	}
	return Value{}, false
}

var _ ReadParams = (*MediaTypeBuf)(nil)

// String returns the buffer as given.
func (b *MediaTypeBuf) String() string { return b.s }

// RenderTo writes the buffer to w.
func (b *MediaTypeBuf) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(b.s)
	return errtrace.Wrap2(cw.Result())
}

// Equal reports whether the buffer equals val under [MediaType.Equal]
// semantics.
func (b *MediaTypeBuf) Equal(val any) bool {
	if b == nil {
		return false
	}
	return b.ToRef().Equal(val)
}

// Compare orders the buffer against other under [MediaType.Compare]
// semantics.
func (b *MediaTypeBuf) Compare(other *MediaTypeBuf) int {
	return b.ToRef().Compare(other.ToRef())
}

// Hash returns a hash consistent with [MediaTypeBuf.Equal].
func (b *MediaTypeBuf) Hash() uint64 { return b.ToRef().Hash() }

// MarshalText implements [encoding.TextMarshaler].
func (b *MediaTypeBuf) MarshalText() ([]byte, error) { return []byte(b.s), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *MediaTypeBuf) UnmarshalText(data []byte) error {
	parsed, err := NewMediaTypeBuf(string(data))
	if err != nil {
		*b = MediaTypeBuf{}
		return errtrace.Wrap(err)
	}
	*b = *parsed
	return nil
}
