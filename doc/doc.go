// Package doc defines the document collaborator consumed by the
// transcript pipeline.
//
// The pipeline never touches raw container bytes: parsing cross-reference
// tables, walking the page tree, and decompressing content streams belong
// to whatever implements [Document]. The [Memory] implementation backs
// tests and examples, and shows the contract an adapter over a real PDF
// reader has to meet.
package doc

import (
	"github.com/pagetext/pagetext/contentstream"
	"github.com/pagetext/pagetext/core"
)

// Page is an opaque page handle, valid for the Document that issued it.
type Page int

// Document is the minimal view of a parsed PDF needed to extract a
// transcript.
type Document interface {
	// Pages returns the document's page handles in document order.
	Pages() []Page

	// PageFonts returns the page's font resources keyed by the resource
	// name text operators select them by (the Tf operand).
	PageFonts(p Page) (map[string]core.Dict, error)

	// ResolveReference fetches the object behind an indirect reference,
	// with any stream data still carrying its Filter entry for the
	// caller to decode.
	ResolveReference(ref core.Ref) (core.Object, error)

	// PageContents returns the page's decoded content instructions in
	// stream order.
	PageContents(p Page) ([]contentstream.Operation, error)
}
