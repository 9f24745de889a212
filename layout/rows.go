package layout

import "github.com/pagetext/pagetext/text"

// MergeRows concatenates consecutive chunks that share a vertical
// position into single rows. The input is scanned once in its given order
// (the merger never re-sorts), and each row keeps the position of its
// first constituent chunk. Merging an already-merged sequence returns it
// unchanged.
func MergeRows(chunks []text.TextChunk) []text.TextChunk {
	if len(chunks) == 0 {
		return nil
	}

	merged := make([]text.TextChunk, 0, len(chunks))
	row := chunks[0]

	for _, c := range chunks[1:] {
		if c.Y == row.Y {
			row.Text += c.Text
			continue
		}
		merged = append(merged, row)
		row = c
	}
	return append(merged, row)
}
