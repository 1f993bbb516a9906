package mediatype

import (
	"fmt"

	"github.com/JohnPeel/mediatype/internal/grammar"
)

// Grammar sentinels, re-exported from the scanner. Match with [errors.Is].
const (
	ErrEmptyInput        = grammar.ErrEmptyInput
	ErrMissingSlash      = grammar.ErrMissingSlash
	ErrEmptyName         = grammar.ErrEmptyName
	ErrNameTooLong       = grammar.ErrNameTooLong
	ErrInvalidChar       = grammar.ErrInvalidChar
	ErrMissingEquals     = grammar.ErrMissingEquals
	ErrEmptyValue        = grammar.ErrEmptyValue
	ErrUnterminatedQuote = grammar.ErrUnterminatedQuote
	ErrTrailingChars     = grammar.ErrTrailingChars
)

// Field identifies the syntactic field a [ParseError] refers to.
type Field = grammar.Field

const (
	FieldNone       = grammar.FieldNone
	FieldType       = grammar.FieldType
	FieldSubtype    = grammar.FieldSubtype
	FieldSuffix     = grammar.FieldSuffix
	FieldParamName  = grammar.FieldParamName
	FieldParamValue = grammar.FieldParamValue
)

// ParseError is returned by [Parse], [ParsePrefix], [NewMediaTypeBuf] and the
// text unmarshalers: a grammar sentinel tagged with the failing field and the
// byte offset where scanning stopped.
type ParseError = grammar.SyntaxError

// ValidationError is returned by [NewName] and [NewValue] when the input
// violates the leaf grammar. Pos is the offending byte offset.
type ValidationError struct {
	Err error
	Pos int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Pos)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (*ValidationError) Grammar() bool { return true }
