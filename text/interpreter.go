package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pagetext/pagetext/contentstream"
	"github.com/pagetext/pagetext/core"
	"github.com/pagetext/pagetext/font"
)

// Error kinds for the interpretation stage.
var (
	// ErrNoFont reports a show-text instruction with no font selected,
	// or selecting a font name that was never resolved.
	ErrNoFont = errors.New("missing font context")

	// ErrBadMatrix reports a Tm instruction whose translation operands
	// are not numeric.
	ErrBadMatrix = errors.New("malformed text matrix")
)

// TextChunk is a decoded run of text tagged with the text-space position
// current when its enclosing text block closed.
type TextChunk struct {
	Text string
	X, Y int
}

// Less orders chunks by (Y, X). This is the display convention for
// vertically stacked rows, not a general reading-order claim.
func (c TextChunk) Less(o TextChunk) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// state is the interpreter's mutable per-page register set.
type state struct {
	inText bool
	fontID string
	x, y   int
	buf    strings.Builder
}

// Interpreter runs a single pass over a page's operations, decoding shown
// text through the shared font cache and emitting one TextChunk per text
// block. The cache and the accumulated chunk list persist across pages;
// everything else resets at page start.
type Interpreter struct {
	fonts  *font.Cache
	st     state
	chunks []TextChunk
}

// NewInterpreter creates an interpreter over a resolved font cache.
func NewInterpreter(fonts *font.Cache) *Interpreter {
	return &Interpreter{fonts: fonts}
}

// Chunks returns the chunks accumulated so far, in page-visit order.
func (in *Interpreter) Chunks() []TextChunk {
	return in.chunks
}

// Run interprets one page's operations. Unrecognized operators are no-ops.
func (in *Interpreter) Run(ops []contentstream.Operation) error {
	in.st = state{}

	for i, op := range ops {
		var err error
		switch op.Operator {
		case "BT":
			in.beginText()
		case "ET":
			in.endText()
		case "Tf":
			in.setFont(op.Operands)
		case "Tj":
			err = in.showText(op.Operands)
		case "Tm":
			err = in.setMatrix(op.Operands)
		}
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Operator, err)
		}
	}
	return nil
}

// beginText opens a text block.
func (in *Interpreter) beginText() {
	in.st.inText = true
}

// endText closes the text block, emitting the accumulated text at the
// current position. An empty block still emits a chunk.
func (in *Interpreter) endText() {
	in.st.inText = false
	in.chunks = append(in.chunks, TextChunk{
		Text: in.st.buf.String(),
		X:    in.st.x,
		Y:    in.st.y,
	})
	in.st.buf.Reset()
}

// setFont records the selected font name. Resolution is deferred until
// text is actually shown, so selecting an unknown name alone is not an
// error.
func (in *Interpreter) setFont(operands []core.Object) {
	if len(operands) == 0 {
		return
	}
	if name, ok := operands[0].(core.Name); ok {
		in.st.fontID = string(name)
	}
}

// showText decodes a string operand through the current font and appends
// it to the block accumulator. Outside a text block it is ignored.
func (in *Interpreter) showText(operands []core.Object) error {
	if !in.st.inText {
		return nil
	}
	if len(operands) == 0 {
		return nil
	}
	str, ok := operands[0].(core.String)
	if !ok {
		return nil
	}

	if in.st.fontID == "" {
		return fmt.Errorf("%w: no font selected before Tj", ErrNoFont)
	}
	f, ok := in.fonts.Get(in.st.fontID)
	if !ok {
		return fmt.Errorf("%w: font %s is not resolved", ErrNoFont, in.st.fontID)
	}

	decoded, err := f.Decode([]byte(str))
	if err != nil {
		return err
	}
	in.st.buf.WriteString(decoded)
	return nil
}

// setMatrix reads the Tm translation components (operands 4 and 5) as the
// new absolute position, truncating reals to integers.
func (in *Interpreter) setMatrix(operands []core.Object) error {
	if len(operands) != 6 {
		return fmt.Errorf("%w: %d operands, want 6", ErrBadMatrix, len(operands))
	}
	x, ok := core.ToInt(operands[4])
	if !ok {
		return fmt.Errorf("%w: x operand is %s, want a number", ErrBadMatrix, operands[4].Kind())
	}
	y, ok := core.ToInt(operands[5])
	if !ok {
		return fmt.Errorf("%w: y operand is %s, want a number", ErrBadMatrix, operands[5].Kind())
	}
	in.st.x, in.st.y = x, y
	return nil
}
