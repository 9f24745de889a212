package font

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error kinds for the font stage. Both are fatal: a document whose fonts
// cannot be decoded as declared cannot produce a faithful transcript.
var (
	// ErrMalformedFont reports an embedded ToUnicode table that cannot
	// be parsed (odd operand count, wrong operand width, undecodable
	// stream) or a table entry producing an invalid Unicode scalar.
	ErrMalformedFont = errors.New("malformed font")

	// ErrBadReference reports a declared ToUnicode reference that does
	// not resolve to a stream in the document's object space.
	ErrBadReference = errors.New("unresolvable reference")
)

// Font resolves raw character codes from show-text operands to Unicode.
// Exactly one decoding strategy applies per call: a ToUnicode table when
// present, otherwise the named legacy encoding.
type Font struct {
	// Name is the resource name the font is selected by (Tf operand).
	Name string

	// Encoding is the declared legacy encoding name, used only when no
	// ToUnicode table is present.
	Encoding string

	// ToUnicode is the custom code-to-Unicode table, or nil.
	ToUnicode *CMap
}

// Decode converts raw show-text bytes to a Unicode string.
//
// With a ToUnicode table the bytes are a sequence of 16-bit big-endian
// codes; codes absent from the table fall back to their own value as a
// Unicode scalar (undeclared codes are assumed to coincide with Unicode
// rather than being dropped). A trailing odd byte, or a table entry that
// is not a valid scalar, is a malformed-font error: corruption must
// surface rather than turn into replacement characters.
//
// Without a table the bytes decode through the named legacy encoding.
func (f *Font) Decode(data []byte) (string, error) {
	if f.ToUnicode == nil {
		return decodeLegacy(f.Encoding, data)
	}

	if len(data)%2 != 0 {
		return "", fmt.Errorf("%w: %s: odd-length string (%d bytes) for two-byte codes", ErrMalformedFont, f.Name, len(data))
	}

	var out strings.Builder
	for i := 0; i < len(data); i += 2 {
		code := uint16(data[i])<<8 | uint16(data[i+1])
		r, ok := f.ToUnicode.Lookup(code)
		if !ok {
			r = rune(code)
		}
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %s: code %04X maps to invalid scalar %X", ErrMalformedFont, f.Name, code, r)
		}
		out.WriteRune(r)
	}
	return out.String(), nil
}
