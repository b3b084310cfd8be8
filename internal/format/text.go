package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes and drops combining marks; "ÁVILA" -> "AVILA".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize strips accents and replaces anything still outside printable
// ASCII with '?'. The result is one byte per character, so the fixed-width
// slots can measure plain byte lengths.
func Sanitize(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		out = s
	}
	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if r >= 0x20 && r < 0x7f {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// UpperSanitize uppercases before sanitizing; used for name-like fields.
func UpperSanitize(s string) string {
	return Sanitize(strings.ToUpper(s))
}

// Latin1 encodes artifact content as ISO 8859-1 bytes. Unsupported runes are
// replaced instead of failing; after Sanitize the replacement never fires, but
// artifact text is routed through it regardless. A fresh encoder per call
// keeps concurrent generation runs independent.
func Latin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
