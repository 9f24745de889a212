// Package pagetext extracts a layout-aware plain-text transcript from a
// PDF's page content streams.
//
// The pipeline decodes per-glyph character codes to Unicode through each
// font's embedded ToUnicode table or declared legacy encoding, merges
// same-baseline text into rows, and re-tags small vertical perturbations
// as <sup>/<sub> fragments using the document's dominant superscript
// offset. Container parsing is supplied by a [doc.Document] collaborator.
//
// Basic usage:
//
//	err := pagetext.FromDocument(d).To(os.Stdout).Transcript()
//
// With options:
//
//	rows, err := pagetext.FromDocument(d).
//	    Pages(1, 2).
//	    Strict().
//	    Rows()
package pagetext

import (
	"io"

	"github.com/pagetext/pagetext/doc"
	"github.com/pagetext/pagetext/text"
)

// Transcriber provides a fluent interface for transcript extraction.
// Configuration methods return a new Transcriber, so a configured chain
// can be reused and shared.
type Transcriber struct {
	doc  doc.Document
	opts options
}

// FromDocument creates a Transcriber over a document collaborator.
func FromDocument(d doc.Document) *Transcriber {
	return &Transcriber{doc: d, opts: defaultOptions()}
}

// To directs transcript output to w instead of standard output.
func (t *Transcriber) To(w io.Writer) *Transcriber {
	nt := t.clone()
	nt.opts.writer = w
	return nt
}

// Pages restricts extraction to the given 1-indexed pages, visited in the
// order listed. Without it, all pages are visited in document order.
func (t *Transcriber) Pages(nums ...int) *Transcriber {
	nt := t.clone()
	nt.opts.pages = append([]int(nil), nums...)
	return nt
}

// Strict makes a document with no superscript signal a fatal ErrNoSignal
// instead of degrading to an unreclassified transcript.
func (t *Transcriber) Strict() *Transcriber {
	nt := t.clone()
	nt.opts.strict = true
	return nt
}

// clone copies the Transcriber so chain methods stay immutable.
func (t *Transcriber) clone() *Transcriber {
	return &Transcriber{doc: t.doc, opts: t.opts.clone()}
}

// Chunks runs font resolution and page interpretation and returns the raw
// positioned chunks in page-visit order, before any row merging. Useful
// for debugging position and decoding issues.
func (t *Transcriber) Chunks() ([]text.TextChunk, error) {
	return t.interpret()
}

// Rows runs the full pipeline and returns the final transcript rows
// without printing them.
func (t *Transcriber) Rows() ([]text.TextChunk, error) {
	rows, _, err := t.rows()
	return rows, err
}

// Transcript runs the full pipeline and prints the transcript to the
// configured writer, one row per line. When a superscript offset was
// discovered, an informational line reporting it precedes the transcript.
func (t *Transcriber) Transcript() error {
	rows, offset, err := t.rows()
	if err != nil {
		return err
	}
	return t.emit(rows, offset)
}
