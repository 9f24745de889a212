package font

import (
	"fmt"

	"github.com/pagetext/pagetext/contentstream"
	"github.com/pagetext/pagetext/core"
)

// CMap is a code-to-Unicode table built from a font's embedded ToUnicode
// stream. Keys are 16-bit character codes; values are Unicode scalars.
type CMap struct {
	m map[uint16]rune
}

// Lookup returns the Unicode scalar for code.
func (c *CMap) Lookup(code uint16) (rune, bool) {
	r, ok := c.m[code]
	return r, ok
}

// Len returns the number of mappings.
func (c *CMap) Len() int {
	return len(c.m)
}

// ParseToUnicode parses an embedded ToUnicode stream into a CMap. The
// stream shares content stream syntax; only endbfchar operations carry
// mappings, as pairwise (code, unicode) operands encoded as two-byte hex
// strings. Later pairs overwrite earlier ones for the same code. All
// other operations are ignored.
//
// An odd operand count, or an operand that is not exactly two bytes, is
// ErrMalformedFont: the font cannot be decoded at all.
func ParseToUnicode(stream *core.Stream) (*CMap, error) {
	if stream == nil {
		return nil, fmt.Errorf("%w: nil ToUnicode stream", ErrMalformedFont)
	}

	data, err := stream.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: decode ToUnicode stream: %v", ErrMalformedFont, err)
	}

	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: parse ToUnicode stream: %v", ErrMalformedFont, err)
	}

	cm := &CMap{m: make(map[uint16]rune)}
	for _, op := range ops {
		if op.Operator != "endbfchar" {
			continue
		}
		if len(op.Operands)%2 != 0 {
			return nil, fmt.Errorf("%w: endbfchar has %d operands, want an even count", ErrMalformedFont, len(op.Operands))
		}
		for i := 0; i < len(op.Operands); i += 2 {
			code, err := operandUint16(op.Operands[i])
			if err != nil {
				return nil, err
			}
			val, err := operandUint16(op.Operands[i+1])
			if err != nil {
				return nil, err
			}
			cm.m[code] = rune(val)
		}
	}
	return cm, nil
}

// operandUint16 interprets a bfchar operand as a big-endian 16-bit value.
func operandUint16(obj core.Object) (uint16, error) {
	s, ok := obj.(core.String)
	if !ok {
		return 0, fmt.Errorf("%w: bfchar operand is %s, want a hex string", ErrMalformedFont, obj.Kind())
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: bfchar operand is %d bytes, want 2", ErrMalformedFont, len(s))
	}
	return uint16(s[0])<<8 | uint16(s[1]), nil
}
