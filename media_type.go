package mediatype

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"braces.dev/errtrace"
	"github.com/zeebo/xxh3"

	"github.com/JohnPeel/mediatype/internal/grammar"
	"github.com/JohnPeel/mediatype/internal/ioutil"
	"github.com/JohnPeel/mediatype/internal/util"
)

// MediaType holds a parsed or programmatically built media type:
// "type/subtype[+suffix][; name=value ...]".
//
// Type, Subtype and Suffix are plain fields and may be reassigned directly;
// parameters are accessed through the [ReadParams] and [WriteParams]
// capabilities. A MediaType produced by [FromParts], [MediaTypeBuf.ToRef],
// [MediaType.Clone] or a plain value copy shares its parameter backbone
// with its source; any mutating call works on a private copy, so the
// source's view is never disturbed.
type MediaType struct {
	// Type is the top-level type.
	Type Name

	// Subtype follows the "/" separator.
	Subtype Name

	// Suffix is the optional structured syntax suffix after the last "+";
	// zero when absent.
	Suffix Name

	params paramSeq
}

// New constructs a MediaType without suffix or parameters.
func New(ty, subty Name) MediaType {
	return MediaType{Type: ty, Subtype: subty}
}

// FromParts constructs a MediaType from all fields. The params slice is
// taken as given: duplicate keys are preserved exactly as parsed duplicates
// would be, and the slice itself is never mutated — the first mutating call
// works on a private copy.
func FromParts(ty, subty, suffix Name, params []Param) MediaType {
	return MediaType{Type: ty, Subtype: subty, Suffix: suffix, params: paramSeq{list: params}}
}

// Parse parses s into a MediaType. All field values are slices of s; only
// the parameter backbone is freshly allocated, and the result owns it.
func Parse(s string) (MediaType, error) {
	idx, err := grammar.Scan(s)
	if err != nil {
		return MediaType{}, errtrace.Wrap(err)
	}
	return fromIndices(s, idx), nil
}

// ParsePrefix parses only the leading "type/subtype[+suffix]" segment of s
// and reports how many bytes were consumed. The remainder of s is not
// inspected, so callers scanning a larger buffer can continue from the
// returned offset.
func ParsePrefix(s string) (MediaType, int, error) {
	idx, n, err := grammar.ScanPrefix(s)
	if err != nil {
		return MediaType{}, 0, errtrace.Wrap(err)
	}
	return fromIndices(s, idx), n, nil
}

func fromIndices(s string, idx grammar.Indices) MediaType {
	mt := MediaType{
		Type:    newNameUnchecked(sliceRange(s, idx.Type)),
		Subtype: newNameUnchecked(sliceRange(s, idx.Subtype)),
	}
	if !idx.Suffix.IsZero() {
		mt.Suffix = newNameUnchecked(sliceRange(s, idx.Suffix))
	}
	if len(idx.Params) > 0 {
		list := make([]Param, len(idx.Params))
		for i, pr := range idx.Params {
			list[i] = Param{
				Key:   newNameUnchecked(sliceRange(s, pr.Name)),
				Value: newValueUnchecked(sliceRange(s, pr.Value)),
			}
		}
		mt.params.list = list
	}
	return mt
}

func sliceRange(s string, r grammar.Range) string { return s[r.Lo:r.Hi] }

// Params yields the parameters in storage order, duplicates included.
func (mt *MediaType) Params() iter.Seq2[Name, Value] { return mt.params.seq() }

// GetParam returns the value of the last parameter matching key,
// case-insensitively ("last write wins").
func (mt *MediaType) GetParam(key Name) (Value, bool) { return mt.params.get(key) }

// SetParam replaces every parameter matching key with a single (key, value)
// entry appended after all remaining parameters.
func (mt *MediaType) SetParam(key Name, value Value) { mt.params.set(key, value) }

// RemoveParams removes all parameters matching key, case-insensitively.
// An absent key is a no-op and does not copy shared storage.
func (mt *MediaType) RemoveParams(key Name) { mt.params.remove(key) }

// ClearParams drops all parameters. Calling it twice is idempotent.
func (mt *MediaType) ClearParams() { mt.params.clear() }

var (
	_ ReadParams  = (*MediaType)(nil)
	_ WriteParams = (*MediaType)(nil)
)

// Clone returns a copy sharing the parameter backbone with the receiver.
// Either side may mutate afterwards; mutation works on a private copy, so
// the other side is never affected.
func (mt *MediaType) Clone() MediaType {
	return *mt
}

// String renders the canonical textual form:
// ty "/" subty ["+" suffix] *("; " name "=" value), parameters in storage
// order. Parsing the result yields a MediaType equal to the receiver.
func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	mt.RenderTo(sb) //nolint:errcheck // strings.Builder never fails

	return sb.String()
}

// RenderTo writes the canonical textual form to w and returns the number of
// bytes written.
func (mt MediaType) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString(mt.Type.String())
	cw.WriteString("/")
	cw.WriteString(mt.Subtype.String())
	if !mt.Suffix.IsZero() {
		cw.WriteString("+")
		cw.WriteString(mt.Suffix.String())
	}
	for _, p := range mt.params.list {
		cw.WriteString("; ")
		cw.WriteString(p.Key.String())
		cw.WriteString("=")
		cw.WriteString(p.Value.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

// Equal reports whether mt equals val, which may be a MediaType,
// *MediaType or *MediaTypeBuf. Type, Subtype and Suffix compare
// case-insensitively; parameters compare positionally — the same pairs in a
// different order are NOT equal. The ordered comparison mirrors the ordered
// read view and is intentional.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	case *MediaTypeBuf:
		if v == nil {
			return false
		}
		other = v.ToRef()
	default:
		return false
	}

	return mt.Type.Equal(other.Type) &&
		mt.Subtype.Equal(other.Subtype) &&
		mt.Suffix.Equal(other.Suffix) &&
		mt.params.equal(&other.params)
}

// Compare gives a total order over media types: lexicographic by folded
// type, subtype and suffix, then by the ordered parameter sequence.
func (mt MediaType) Compare(other MediaType) int {
	if c := mt.Type.Compare(other.Type); c != 0 {
		return c
	}
	if c := mt.Subtype.Compare(other.Subtype); c != 0 {
		return c
	}
	if c := mt.Suffix.Compare(other.Suffix); c != 0 {
		return c
	}
	return mt.params.compare(&other.params)
}

var hashSep = []byte{0}

// Hash returns a hash consistent with [MediaType.Equal].
func (mt MediaType) Hash() uint64 {
	h := xxh3.New()
	foldWrite(h, mt.Type.String())
	h.Write(hashSep)
	foldWrite(h, mt.Subtype.String())
	h.Write(hashSep)
	foldWrite(h, mt.Suffix.String())
	h.Write(hashSep)
	for _, p := range mt.params.list {
		foldWrite(h, p.Key.String())
		h.Write(hashSep)
		io.WriteString(h, p.Value.Unquoted()) //nolint:errcheck // hashers never fail
		h.Write(hashSep)
	}
	return h.Sum64()
}

// IsValid reports whether both mandatory fields are set. Non-zero names are
// valid by construction.
func (mt MediaType) IsValid() bool {
	return !mt.Type.IsZero() && !mt.Subtype.IsZero()
}

// IsZero reports whether mt is the zero value.
func (mt MediaType) IsZero() bool {
	return mt.Type.IsZero() && mt.Subtype.IsZero() && mt.Suffix.IsZero() && len(mt.params.list) == 0
}

// MarshalText implements [encoding.TextMarshaler].
func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Empty input resets
// the receiver to the zero value without error.
func (mt *MediaType) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		*mt = MediaType{}
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*mt = parsed
	return nil
}
