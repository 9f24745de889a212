// Package contentstream parses PDF content streams into operations.
//
// A content stream is a sequence of operands followed by an operator:
//
//	parser := contentstream.NewParser(data)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Println(op.Operator, op.Operands)
//	}
//
// The text transcript pipeline cares about BT/ET (text blocks), Tf (font
// selection), Tm (text matrix), and Tj (show text). Embedded ToUnicode
// CMaps use the same syntax, with the mappings carried as operands of the
// endbfchar operator.
package contentstream
