// Package font resolves PDF font resources into text decoders.
//
// A [Font] carries a declared legacy encoding name and, when the resource
// embeds a ToUnicode stream, a custom [CMap] from 16-bit character codes
// to Unicode scalars. Exactly one strategy is used per decode call, with
// the table taking precedence.
//
// Fonts are built once per resource name and cached for the document's
// lifetime in a [Cache]:
//
//	cache := font.NewCache()
//	err := cache.Add("F1", fontDict, resolve)
//	f, _ := cache.Get("F1")
//	text, err := f.Decode(raw)
//
// Legacy encodings decode through golang.org/x/text/encoding/charmap;
// UTF-16BE strings (leading BOM) are handled regardless of the declared
// encoding.
package font
