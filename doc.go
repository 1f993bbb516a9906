// Package mediatype parses, builds and serializes media type strings of the
// form "type/subtype[+suffix][; name=value ...]" as defined by RFC 6838 and
// RFC 2045.
//
// # Overview
//
// The package is built around three value types:
//
//   - [Name]: a validated restricted name, used for the type, subtype and
//     suffix positions and for parameter names. Names compare, order and
//     hash case-insensitively but always display their original bytes.
//   - [Value]: a validated parameter value, either a bare token or a quoted
//     string. Values compare on decoded content, case-sensitively.
//   - [MediaType]: the aggregate combining both with an ordered,
//     copy-on-write parameter sequence.
//
// [MediaTypeBuf] is the owned, immutable counterpart of [MediaType]: one
// buffer plus field offsets, convertible to a borrowed view with
// [MediaTypeBuf.ToRef].
//
// # Parsing
//
// [Parse] scans the input once and slices every field out of the original
// string, allocating only the parameter backbone:
//
//	mt, err := mediatype.Parse("image/svg+xml; charset=UTF-8")
//
// [ParsePrefix] stops after "type/subtype[+suffix]" and reports how many
// bytes it consumed, for callers scanning a larger buffer. Malformed input
// always yields a [ParseError] carrying the failing field and byte offset;
// no input can cause a panic.
//
// # Construction
//
// [New] and [FromParts] build media types programmatically, typically from
// the pre-validated constants in the names and values subpackages:
//
//	mt := mediatype.FromParts(names.Image, names.SVG, names.XML,
//		[]mediatype.Param{{Key: names.Charset, Value: values.UTF8}})
//
// # Parameters
//
// Parameter access is split into a read capability ([ReadParams]) and a
// write capability ([WriteParams]). Reads follow the "last write wins"
// convention for duplicate keys; writes collapse duplicates. Parameter
// storage is copy-on-write: views, clones and plain value copies share one
// backbone, and every mutation builds a private copy.
//
// # Comparison
//
// [MediaType.Equal] folds case for the type, subtype, suffix and parameter
// names only; parameter values stay case-sensitive, and parameter order is
// significant. [MediaType.Compare] gives a total order and
// [MediaType.Hash] is consistent with Equal. The round-trip law holds for
// every constructible value: parsing String() output yields an equal value.
//
// # References
//
//   - RFC 6838 - Media Type Specifications and Registration Procedures
//   - RFC 2045 - Format of Internet Message Bodies (token / quoted-string)
package mediatype
