package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pagetext/pagetext/text"
)

// ErrNoSignal reports that no upward offset exists between any pair of
// consecutive rows, leaving the superscript heuristic without a threshold.
var ErrNoSignal = errors.New("no superscript offset found")

// RaiseOffset discovers the dominant superscript offset: the most common
// magnitude of upward (negative) vertical displacement between
// consecutive rows. Superscripts lift the baseline by a small constant
// amount, so across a document that magnitude outnumbers the page-scale
// jumps. Ties resolve to the smallest magnitude.
func RaiseOffset(rows []text.TextChunk) (int, error) {
	counts := make(map[int]int)
	prevY := 0
	for i, row := range rows {
		if i > 0 {
			if off := row.Y - prevY; off < 0 {
				counts[-off]++
			}
		}
		prevY = row.Y
	}
	if len(counts) == 0 {
		return 0, ErrNoSignal
	}

	magnitudes := make([]int, 0, len(counts))
	for m := range counts {
		magnitudes = append(magnitudes, m)
	}
	sort.Ints(magnitudes)

	best := magnitudes[0]
	for _, m := range magnitudes[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best, nil
}

// Reclassify walks rows in order and re-tags the ones whose vertical
// displacement from the previous baseline is small enough to be a
// superscript or subscript rather than a new line. A re-tagged row's text
// is wrapped in <sup> (upward) or <sub> (downward) markers and the row is
// pinned to the previous baseline, so a following re-merge folds it into
// its logical line. A row whose X retreats is always a new line: the
// horizontal position reset outranks any vertical evidence.
func Reclassify(rows []text.TextChunk, raiseOffset int) []text.TextChunk {
	out := make([]text.TextChunk, 0, len(rows))
	lastX, lastY := 0, 0

	for _, row := range rows {
		if row.X < lastX {
			lastX, lastY = row.X, row.Y
			out = append(out, row)
			continue
		}

		offset := row.Y - lastY
		if offset != 0 && abs(offset) <= raiseOffset {
			tag := "sup"
			if offset > 0 {
				tag = "sub"
			}
			lastX = row.X
			// lastY stays at the previous baseline.
			out = append(out, text.TextChunk{
				Text: fmt.Sprintf("<%s>%s</%s>", tag, row.Text, tag),
				X:    row.X,
				Y:    lastY,
			})
			continue
		}

		lastX, lastY = row.X, row.Y
		out = append(out, row)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
