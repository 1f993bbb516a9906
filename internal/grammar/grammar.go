// Package grammar implements the RFC 6838 / RFC 2045 media type grammar:
// byte classification, quoted-string escaping and the offset scanner that
// backs [mediatype.Parse].
package grammar

//go:generate errtrace -w .

import (
	"fmt"

	"github.com/JohnPeel/mediatype/internal/constraints"
	"github.com/JohnPeel/mediatype/internal/errorutil"
)

// MaxNameLen is the maximum length of a restricted name in bytes (RFC 6838 4.2).
const MaxNameLen = 127

const (
	ErrEmptyInput        errorutil.Error = "empty input"
	ErrMissingSlash      errorutil.Error = "missing '/' separator"
	ErrEmptyName         errorutil.Error = "empty restricted name"
	ErrNameTooLong       errorutil.Error = "restricted name exceeds 127 bytes"
	ErrInvalidChar       errorutil.Error = "invalid character"
	ErrMissingEquals     errorutil.Error = "missing '=' after parameter name"
	ErrEmptyValue        errorutil.Error = "empty parameter value"
	ErrUnterminatedQuote errorutil.Error = "unterminated quoted string"
	ErrTrailingChars     errorutil.Error = "unexpected trailing characters"
)

// Field identifies the syntactic position a scanner error refers to.
type Field uint8

const (
	FieldNone Field = iota
	FieldType
	FieldSubtype
	FieldSuffix
	FieldParamName
	FieldParamValue
)

func (f Field) String() string {
	switch f {
	case FieldType:
		return "type"
	case FieldSubtype:
		return "subtype"
	case FieldSuffix:
		return "suffix"
	case FieldParamName:
		return "parameter name"
	case FieldParamValue:
		return "parameter value"
	default:
		return "input"
	}
}

// SyntaxError reports a grammar violation with the byte offset where it was
// detected and the logical field being scanned at that point.
type SyntaxError struct {
	Err   error
	Field Field
	Pos   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s in %s at offset %d", e.Err, e.Field, e.Pos)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (*SyntaxError) Grammar() bool { return true }

func syntaxErr(err error, f Field, pos int) error {
	return &SyntaxError{Err: err, Field: f, Pos: pos} //errtrace:skip
}

var (
	nameChars  [256]bool
	tokenChars [256]bool
)

func init() {
	for c := byte('0'); c <= '9'; c++ {
		nameChars[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		nameChars[c] = true
		nameChars[c-'a'+'A'] = true
	}
	for _, c := range []byte("!#$&-^_.+") {
		nameChars[c] = true
	}
	// RFC 2045 token: printable US-ASCII except SPACE and tspecials.
	for c := byte(0x21); c < 0x7f; c++ {
		tokenChars[c] = true
	}
	for _, c := range []byte(`()<>@,;:\"/[]?=`) {
		tokenChars[c] = false
	}
}

// IsNameByte reports whether c may appear in a restricted name.
func IsNameByte(c byte) bool { return nameChars[c] }

// IsNameFirstByte reports whether c may start a restricted name.
func IsNameFirstByte(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsTokenByte reports whether c may appear in an unquoted parameter value.
func IsTokenByte(c byte) bool { return tokenChars[c] }

func isOWS(c byte) bool { return c == ' ' || c == '\t' }

// IsRestrictedName reports whether s is a valid RFC 6838 restricted name.
func IsRestrictedName[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || len(s) > MaxNameLen || !IsNameFirstByte(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !nameChars[s[i]] {
			return false
		}
	}
	return true
}

// IsToken reports whether s is a non-empty run of token bytes.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}

// CheckName validates s as a restricted name. On failure it returns the
// offending byte offset and one of [ErrEmptyName], [ErrNameTooLong] or
// [ErrInvalidChar].
func CheckName[T constraints.Byteseq](s T) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyName //errtrace:skip
	}
	if len(s) > MaxNameLen {
		return MaxNameLen, ErrNameTooLong //errtrace:skip
	}
	if !IsNameFirstByte(s[0]) {
		return 0, ErrInvalidChar //errtrace:skip
	}
	for i := 1; i < len(s); i++ {
		if !nameChars[s[i]] {
			return i, ErrInvalidChar //errtrace:skip
		}
	}
	return 0, nil
}
