// Package names provides pre-validated [mediatype.Name] constants for
// well-known registry literals.
package names

import "github.com/JohnPeel/mediatype"

// Top-level types.
var (
	Application = mediatype.MustName("application")
	Audio       = mediatype.MustName("audio")
	Example     = mediatype.MustName("example")
	Font        = mediatype.MustName("font")
	Image       = mediatype.MustName("image")
	Message     = mediatype.MustName("message")
	Model       = mediatype.MustName("model")
	Multipart   = mediatype.MustName("multipart")
	Text        = mediatype.MustName("text")
	Video       = mediatype.MustName("video")
)

// Subtypes.
var (
	Alternative       = mediatype.MustName("alternative")
	CSS               = mediatype.MustName("css")
	CSV               = mediatype.MustName("csv")
	FormData          = mediatype.MustName("form-data")
	GIF               = mediatype.MustName("gif")
	HTML              = mediatype.MustName("html")
	JavaScript        = mediatype.MustName("javascript")
	JPEG              = mediatype.MustName("jpeg")
	Mixed             = mediatype.MustName("mixed")
	OctetStream       = mediatype.MustName("octet-stream")
	PDF               = mediatype.MustName("pdf")
	Plain             = mediatype.MustName("plain")
	PNG               = mediatype.MustName("png")
	Related           = mediatype.MustName("related")
	SVG               = mediatype.MustName("svg")
	WebP              = mediatype.MustName("webp")
	WWWFormUrlencoded = mediatype.MustName("x-www-form-urlencoded")
)

// Suffixes and subtypes that double as suffixes.
var (
	BER  = mediatype.MustName("ber")
	DER  = mediatype.MustName("der")
	GZip = mediatype.MustName("gzip")
	JSON = mediatype.MustName("json")
	XML  = mediatype.MustName("xml")
	Zip  = mediatype.MustName("zip")
)

// Parameter names.
var (
	Boundary = mediatype.MustName("boundary")
	Charset  = mediatype.MustName("charset")
	Filename = mediatype.MustName("filename")
	Name     = mediatype.MustName("name")
	Protocol = mediatype.MustName("protocol")
	Q        = mediatype.MustName("q")
	Version  = mediatype.MustName("version")
)
