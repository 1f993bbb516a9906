package grammar

import (
	"braces.dev/errtrace"

	"github.com/JohnPeel/mediatype/internal/constraints"
)

// Range is a half-open byte-offset interval [Lo, Hi) into the scanned input.
type Range struct{ Lo, Hi int }

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.Lo == 0 && r.Hi == 0 }

// ParamRange holds the offsets of one parameter's name and value. The value
// range includes the surrounding quotes when the value is a quoted string.
type ParamRange struct {
	Name  Range
	Value Range
}

// Indices holds the validated field offsets produced by one scanner pass.
// All ranges index the original input; the scanner itself allocates nothing
// beyond the Params slice.
type Indices struct {
	Type    Range
	Subtype Range
	Suffix  Range // zero when no suffix is present
	Params  []ParamRange
}

// Scan runs the scanner over the whole input. Any unconsumed byte after the
// final parameter is reported as [ErrTrailingChars].
func Scan[T constraints.Byteseq](s T) (Indices, error) {
	idx, _, err := scan(s, false)
	return idx, errtrace.Wrap(err)
}

// ScanPrefix scans only the leading type "/" subtype ["+" suffix] segment and
// reports how many bytes it consumed. The remainder of the input is not
// inspected, so callers can keep parsing from the returned offset.
func ScanPrefix[T constraints.Byteseq](s T) (Indices, int, error) {
	idx, n, err := scan(s, true)
	return idx, n, errtrace.Wrap(err)
}

func scan[T constraints.Byteseq](s T, prefixOnly bool) (Indices, int, error) {
	var idx Indices
	if len(s) == 0 {
		return idx, 0, syntaxErr(ErrEmptyInput, FieldNone, 0) //errtrace:skip
	}

	i, err := scanName(s, 0, FieldType)
	if err != nil {
		return idx, 0, err //errtrace:skip
	}
	if i > MaxNameLen {
		return idx, 0, syntaxErr(ErrNameTooLong, FieldType, 0) //errtrace:skip
	}
	idx.Type = Range{0, i}
	if i >= len(s) {
		return idx, i, syntaxErr(ErrMissingSlash, FieldNone, i) //errtrace:skip
	}
	if s[i] != '/' {
		return idx, i, syntaxErr(ErrInvalidChar, FieldType, i) //errtrace:skip
	}
	i++

	start := i
	i, err = scanName(s, i, FieldSubtype)
	if err != nil {
		return idx, i, err //errtrace:skip
	}
	seg := Range{start, i}
	if plus := lastIndexByte(s, seg, '+'); plus >= 0 {
		sub, suf := Range{seg.Lo, plus}, Range{plus + 1, seg.Hi}
		if suf.Len() == 0 {
			return idx, i, syntaxErr(ErrEmptyName, FieldSuffix, suf.Lo) //errtrace:skip
		}
		if !IsNameFirstByte(s[suf.Lo]) {
			return idx, i, syntaxErr(ErrInvalidChar, FieldSuffix, suf.Lo) //errtrace:skip
		}
		if sub.Len() > MaxNameLen {
			return idx, i, syntaxErr(ErrNameTooLong, FieldSubtype, sub.Lo) //errtrace:skip
		}
		if suf.Len() > MaxNameLen {
			return idx, i, syntaxErr(ErrNameTooLong, FieldSuffix, suf.Lo) //errtrace:skip
		}
		idx.Subtype, idx.Suffix = sub, suf
	} else {
		if seg.Len() > MaxNameLen {
			return idx, i, syntaxErr(ErrNameTooLong, FieldSubtype, seg.Lo) //errtrace:skip
		}
		idx.Subtype = seg
	}

	if prefixOnly {
		return idx, i, nil
	}

	for i < len(s) {
		j := skipOWS(s, i)
		if j >= len(s) {
			// whitespace is only allowed around ';'
			return idx, i, syntaxErr(ErrTrailingChars, FieldNone, i) //errtrace:skip
		}
		if s[j] != ';' {
			// an unexpected byte after a complete parameter value is
			// tagged with the value field, plain trailing input is not
			field := FieldNone
			if len(idx.Params) > 0 {
				field = FieldParamValue
			}
			return idx, j, syntaxErr(ErrTrailingChars, field, j) //errtrace:skip
		}
		i = skipOWS(s, j+1)
		if i >= len(s) {
			return idx, i, syntaxErr(ErrEmptyName, FieldParamName, i) //errtrace:skip
		}

		nameStart := i
		i, err = scanName(s, i, FieldParamName)
		if err != nil {
			return idx, i, err //errtrace:skip
		}
		nameR := Range{nameStart, i}
		if nameR.Len() > MaxNameLen {
			return idx, i, syntaxErr(ErrNameTooLong, FieldParamName, nameR.Lo) //errtrace:skip
		}
		if i >= len(s) || s[i] != '=' {
			return idx, i, syntaxErr(ErrMissingEquals, FieldParamName, i) //errtrace:skip
		}
		i++

		valStart := i
		switch {
		case i >= len(s) || s[i] == ';' || isOWS(s[i]):
			return idx, i, syntaxErr(ErrEmptyValue, FieldParamValue, i) //errtrace:skip
		case s[i] == '"':
			i, err = scanQuoted(s, i)
			if err != nil {
				return idx, i, err //errtrace:skip
			}
		default:
			for i < len(s) && tokenChars[s[i]] {
				i++
			}
			if i == valStart {
				return idx, i, syntaxErr(ErrInvalidChar, FieldParamValue, i) //errtrace:skip
			}
		}
		idx.Params = append(idx.Params, ParamRange{Name: nameR, Value: Range{valStart, i}})
	}

	return idx, i, nil
}

// scanName consumes a run of restricted-name bytes starting at s[i].
// Length limits are the caller's concern: the subtype run may legitimately
// span both the subtype and suffix names.
func scanName[T constraints.Byteseq](s T, i int, f Field) (int, error) {
	if i >= len(s) {
		return i, syntaxErr(ErrEmptyName, f, i) //errtrace:skip
	}
	if !nameChars[s[i]] {
		switch s[i] {
		case '/', '+', ';', '=', ' ', '\t':
			return i, syntaxErr(ErrEmptyName, f, i) //errtrace:skip
		default:
			return i, syntaxErr(ErrInvalidChar, f, i) //errtrace:skip
		}
	}
	if !IsNameFirstByte(s[i]) {
		return i, syntaxErr(ErrInvalidChar, f, i) //errtrace:skip
	}
	j := i + 1
	for j < len(s) && nameChars[s[j]] {
		j++
	}
	return j, nil
}

// scanQuoted consumes a quoted-string whose opening quote is s[i] and returns
// the offset just past the closing quote.
func scanQuoted[T constraints.Byteseq](s T, i int) (int, error) {
	start := i
	i++
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return i, syntaxErr(ErrUnterminatedQuote, FieldParamValue, start) //errtrace:skip
}

func skipOWS[T constraints.Byteseq](s T, i int) int {
	for i < len(s) && isOWS(s[i]) {
		i++
	}
	return i
}

func lastIndexByte[T constraints.Byteseq](s T, r Range, c byte) int {
	for i := r.Hi - 1; i >= r.Lo; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}
