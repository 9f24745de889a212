// Package layout reconstructs line structure from positioned text chunks.
//
// [MergeRows] concatenates consecutive chunks sharing a baseline into
// rows. [RaiseOffset] finds the dominant upward displacement between
// consecutive rows, and [Reclassify] uses it to re-tag small vertical
// perturbations as <sup>/<sub> fragments pinned to the previous baseline.
// Reclassification can create new same-baseline adjacencies, so callers
// re-run MergeRows afterwards.
package layout
