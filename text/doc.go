// Package text interprets page content operations into positioned text.
//
// The [Interpreter] is a single-pass state machine over one page's
// operations. It tracks text-block membership (BT/ET), the selected font
// name (Tf), and the absolute text position (Tm translation components),
// and emits one [TextChunk] per closed text block. Shown strings (Tj)
// decode through the document-wide font cache.
//
// State resets at each page; the font cache and the chunk list are shared
// across pages, so a document's chunks accumulate in page-visit order.
package text
