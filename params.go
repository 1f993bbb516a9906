package mediatype

import (
	"cmp"
	"iter"
	"slices"
)

// Param is a single media type parameter.
type Param struct {
	Key   Name
	Value Value
}

// ReadParams is the read capability over a media type's parameter sequence.
// It is implemented by [*MediaType] and [*MediaTypeBuf].
type ReadParams interface {
	// Params yields the parameters in storage order, duplicates included.
	// The sequence is restartable: ranging over it again replays the same
	// pairs.
	Params() iter.Seq2[Name, Value]

	// GetParam returns the value of the last parameter whose key
	// case-insensitively equals key ("last write wins"); false when no
	// parameter matches.
	GetParam(key Name) (Value, bool)
}

// WriteParams is the write capability over a media type's parameter
// sequence. It is implemented by [*MediaType].
type WriteParams interface {
	// SetParam removes every parameter matching key and appends
	// (key, value) at the end.
	SetParam(key Name, value Value)

	// RemoveParams removes every parameter matching key.
	RemoveParams(key Name)

	// ClearParams removes all parameters.
	ClearParams()
}

// paramSeq is the shared parameter backbone. The list may be aliased by a
// FromParts caller, a MediaTypeBuf view, a Clone sibling or any plain value
// copy of the containing MediaType, and none of those aliases are
// detectable. Mutating methods therefore rebuild into a freshly allocated
// slice and never write through memory an alias can still read.
type paramSeq struct {
	list []Param
}

func (ps *paramSeq) get(key Name) (Value, bool) {
	for i := len(ps.list) - 1; i >= 0; i-- {
		if ps.list[i].Key.Equal(key) {
			return ps.list[i].Value, true
		}
	}
	return Value{}, false
}

func (ps *paramSeq) set(key Name, value Value) {
	list := slices.DeleteFunc(slices.Clone(ps.list), func(p Param) bool { return p.Key.Equal(key) })
	ps.list = append(list, Param{Key: key, Value: value})
}

func (ps *paramSeq) remove(key Name) {
	if !slices.ContainsFunc(ps.list, func(p Param) bool { return p.Key.Equal(key) }) {
		return
	}
	ps.list = slices.DeleteFunc(slices.Clone(ps.list), func(p Param) bool { return p.Key.Equal(key) })
}

func (ps *paramSeq) clear() {
	ps.list = nil
}

func (ps *paramSeq) seq() iter.Seq2[Name, Value] {
	list := ps.list
	return func(yield func(Name, Value) bool) {
		for _, p := range list {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (ps *paramSeq) equal(other *paramSeq) bool {
	if len(ps.list) != len(other.list) {
		return false
	}
	for i := range ps.list {
		if !ps.list[i].Key.Equal(other.list[i].Key) ||
			!ps.list[i].Value.Equal(other.list[i].Value) {
			return false
		}
	}
	return true
}

func (ps *paramSeq) compare(other *paramSeq) int {
	for i := 0; i < len(ps.list) && i < len(other.list); i++ {
		if c := ps.list[i].Key.Compare(other.list[i].Key); c != 0 {
			return c
		}
		if c := ps.list[i].Value.Compare(other.list[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ps.list), len(other.list))
}
