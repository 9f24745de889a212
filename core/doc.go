// Package core provides the typed PDF object model shared by the content
// stream parser, the font resolver, and the document collaborator.
//
// It implements the PDF object types that occur as content stream operands
// and font resource values ([Null], [Bool], [Int], [Real], [String], [Name],
// [Array], [Dict]), plus [Stream] (dictionary + raw bytes) and [Ref]
// (indirect reference). Cross-reference tables, object streams, and the
// rest of the container format are deliberately absent: resolving a [Ref]
// to an object is the job of the document collaborator, not this package.
//
// # Stream Decoding
//
// [Stream.Decode] applies the stream's Filter chain (FlateDecode,
// ASCIIHexDecode, ASCII85Decode) and returns the decoded bytes.
package core
