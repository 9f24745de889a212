package pagetext

import (
	"github.com/pagetext/pagetext/font"
	"github.com/pagetext/pagetext/layout"
	"github.com/pagetext/pagetext/text"
)

// The pipeline's fatal error kinds, re-exported from the stages that
// raise them so callers can match with errors.Is against one package.
var (
	// ErrMalformedFont: an embedded ToUnicode table cannot be parsed, or
	// a table entry produces an invalid Unicode scalar.
	ErrMalformedFont = font.ErrMalformedFont

	// ErrBadReference: a declared ToUnicode reference does not resolve
	// to a stream.
	ErrBadReference = font.ErrBadReference

	// ErrNoFont: text is shown with no font selected, or with a font
	// name that was never resolved.
	ErrNoFont = text.ErrNoFont

	// ErrBadMatrix: a Tm instruction's translation operands are not
	// numeric.
	ErrBadMatrix = text.ErrBadMatrix

	// ErrNoSignal: no upward offset exists in the whole document; raised
	// only under Strict.
	ErrNoSignal = layout.ErrNoSignal
)
