package contentstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pagetext/pagetext/core"
)

// Operation is a single content stream instruction: an operator name plus
// the operands that preceded it.
type Operation struct {
	Operator string
	Operands []core.Object
}

// Parser tokenizes a content stream into a sequence of operations. The
// same syntax covers page content and embedded ToUnicode CMap streams.
type Parser struct {
	data  []byte
	pos   int
	stack []core.Object // operands awaiting their operator
}

// NewParser creates a parser over the given decoded stream data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse returns all operations in stream order. Operands with no trailing
// operator at end of input are discarded.
func (p *Parser) Parse() ([]Operation, error) {
	var ops []Operation

	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return ops, nil
		}

		c := p.data[p.pos]

		// Comments run to end of line.
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}

		if isRegular(c) && !isNumberStart(c) {
			op, err := p.readOperator()
			if err != nil {
				return nil, err
			}
			// Keywords true/false/null are operands, not operators.
			switch op {
			case "true":
				p.stack = append(p.stack, core.Bool(true))
			case "false":
				p.stack = append(p.stack, core.Bool(false))
			case "null":
				p.stack = append(p.stack, core.Null{})
			default:
				ops = append(ops, Operation{Operator: op, Operands: p.stack})
				p.stack = nil
			}
			continue
		}

		obj, err := p.readOperand()
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", p.pos, err)
		}
		p.stack = append(p.stack, obj)
	}
}

// readOperator reads an operator token. Besides letters, operators may
// contain ', " and * (as in T*, ' and ").
func (p *Parser) readOperator() (string, error) {
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || c == '\'' || c == '"' || c == '*' {
			p.pos++
		} else {
			break
		}
	}
	if p.pos == start {
		return "", fmt.Errorf("empty operator at offset %d", start)
	}
	return string(p.data[start:p.pos]), nil
}

// readOperand reads a single operand object.
func (p *Parser) readOperand() (core.Object, error) {
	p.skipSpace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]
	switch {
	case isNumberStart(c):
		return p.readNumber()
	case c == '(':
		return p.readString()
	case c == '/':
		return p.readName()
	case c == '[':
		return p.readArray()
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			return p.readDict()
		}
		return p.readHexString()
	}
	return nil, fmt.Errorf("unexpected character %q", c)
}

// readNumber reads an integer or real operand.
func (p *Parser) readNumber() (core.Object, error) {
	start := p.pos
	real := false

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !real {
			real = true
			p.pos++
		} else {
			break
		}
	}

	tok := string(p.data[start:p.pos])
	if real {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real %q: %w", tok, err)
		}
		return core.Real(v), nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", tok, err)
	}
	return core.Int(v), nil
}

// readString reads a literal string (...) handling nesting and escapes.
func (p *Parser) readString() (core.Object, error) {
	p.pos++ // '('
	var out bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			esc := p.data[p.pos]
			switch esc {
			case 'n':
				out.WriteByte('\n')
				p.pos++
			case 'r':
				out.WriteByte('\r')
				p.pos++
			case 't':
				out.WriteByte('\t')
				p.pos++
			case 'b':
				out.WriteByte('\b')
				p.pos++
			case 'f':
				out.WriteByte('\f')
				p.pos++
			case '(', ')', '\\':
				out.WriteByte(esc)
				p.pos++
			case '\r':
				// Line continuation.
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(esc - '0')
				p.pos++
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					d := p.data[p.pos]
					if d < '0' || d > '7' {
						break
					}
					v = v*8 + int(d-'0')
					p.pos++
				}
				out.WriteByte(byte(v))
			default:
				out.WriteByte(esc)
				p.pos++
			}
		case c == '(':
			depth++
			out.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				out.WriteByte(c)
			}
			p.pos++
		default:
			out.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed string")
	}
	return core.String(out.String()), nil
}

// readHexString reads <...>, pairing hex digits into bytes. An odd digit
// count implies a trailing zero nibble.
func (p *Parser) readHexString() (core.Object, error) {
	p.pos++ // '<'
	var out bytes.Buffer
	var hi byte
	havePair := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			if havePair {
				out.WriteByte(hi << 4)
			}
			return core.String(out.String()), nil
		}
		if isSpace(c) {
			p.pos++
			continue
		}
		v, ok := hexVal(c)
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		if !havePair {
			hi = v
			havePair = true
		} else {
			out.WriteByte(hi<<4 | v)
			havePair = false
		}
		p.pos++
	}
	return nil, fmt.Errorf("unterminated hex string")
}

// readName reads /Name with #XX escapes.
func (p *Parser) readName() (core.Object, error) {
	p.pos++ // '/'
	var out bytes.Buffer

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) {
			h1, ok1 := hexVal(p.data[p.pos+1])
			h2, ok2 := hexVal(p.data[p.pos+2])
			if ok1 && ok2 {
				out.WriteByte(h1<<4 | h2)
				p.pos += 3
				continue
			}
		}
		out.WriteByte(c)
		p.pos++
	}
	return core.Name(out.String()), nil
}

// readArray reads [...] of operands.
func (p *Parser) readArray() (core.Object, error) {
	p.pos++ // '['
	var arr core.Array

	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.readOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// readDict reads <<...>>. Dictionaries are rare in content streams but
// legal (inline image parameters, marked content properties).
func (p *Parser) readDict() (core.Object, error) {
	p.pos += 2 // '<<'
	dict := make(core.Dict)

	for {
		p.skipSpace()
		if p.pos+1 >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}
		key, err := p.readName()
		if err != nil {
			return nil, err
		}
		val, err := p.readOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(core.Name))] = val
	}
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isRegular reports whether c can start an operator token.
func isRegular(c byte) bool {
	return !isSpace(c) && !isDelimiter(c)
}

// isNumberStart reports whether c can start a numeric operand.
func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
