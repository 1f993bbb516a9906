// Package values provides pre-validated [mediatype.Value] constants for
// well-known parameter value literals.
package values

import "github.com/JohnPeel/mediatype"

// Charsets.
var (
	ISO88591 = mediatype.MustValue("ISO-8859-1")
	USASCII  = mediatype.MustValue("US-ASCII")
	UTF8     = mediatype.MustValue("UTF-8")
)

// Transfer encodings.
var (
	Base64          = mediatype.MustValue("base64")
	Binary          = mediatype.MustValue("binary")
	EightBit        = mediatype.MustValue("8bit")
	QuotedPrintable = mediatype.MustValue("quoted-printable")
	SevenBit        = mediatype.MustValue("7bit")
)
