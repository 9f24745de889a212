package pagetext

import (
	"errors"
	"fmt"

	"github.com/pagetext/pagetext/doc"
	"github.com/pagetext/pagetext/font"
	"github.com/pagetext/pagetext/layout"
	"github.com/pagetext/pagetext/text"
)

// selectPages applies the page selection option to the document's page
// list.
func (t *Transcriber) selectPages() ([]doc.Page, error) {
	all := t.doc.Pages()
	if t.opts.pages == nil {
		return all, nil
	}

	selected := make([]doc.Page, 0, len(t.opts.pages))
	for _, n := range t.opts.pages {
		if n < 1 || n > len(all) {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", n, len(all))
		}
		selected = append(selected, all[n-1])
	}
	return selected, nil
}

// resolveFonts builds the document-wide font cache before any page is
// interpreted. Fonts are deduplicated by resource name across pages.
func (t *Transcriber) resolveFonts(pages []doc.Page) (*font.Cache, error) {
	cache := font.NewCache()
	for _, p := range pages {
		fonts, err := t.doc.PageFonts(p)
		if err != nil {
			return nil, fmt.Errorf("fonts for page %d: %w", p, err)
		}
		for name, dict := range fonts {
			if err := cache.Add(name, dict, t.doc.ResolveReference); err != nil {
				return nil, fmt.Errorf("resolve fonts: %w", err)
			}
		}
	}
	return cache, nil
}

// interpret resolves fonts and runs the interpreter over every selected
// page, returning the accumulated chunks in page-visit order.
func (t *Transcriber) interpret() ([]text.TextChunk, error) {
	pages, err := t.selectPages()
	if err != nil {
		return nil, err
	}

	cache, err := t.resolveFonts(pages)
	if err != nil {
		return nil, err
	}

	interp := text.NewInterpreter(cache)
	for _, p := range pages {
		ops, err := t.doc.PageContents(p)
		if err != nil {
			return nil, fmt.Errorf("contents for page %d: %w", p, err)
		}
		if err := interp.Run(ops); err != nil {
			return nil, fmt.Errorf("interpret page %d: %w", p, err)
		}
	}
	return interp.Chunks(), nil
}

// rows runs the pipeline through reclassification and the second merge
// pass. The returned offset is the discovered superscript offset, or -1
// when the document had no signal and reclassification was skipped.
func (t *Transcriber) rows() ([]text.TextChunk, int, error) {
	chunks, err := t.interpret()
	if err != nil {
		return nil, -1, err
	}

	merged := layout.MergeRows(chunks)

	offset, err := layout.RaiseOffset(merged)
	if err != nil {
		if errors.Is(err, layout.ErrNoSignal) && !t.opts.strict {
			// No upward offset anywhere: nothing to reclassify.
			return merged, -1, nil
		}
		return nil, -1, fmt.Errorf("superscript discovery: %w", err)
	}

	reclassified := layout.Reclassify(merged, offset)
	return layout.MergeRows(reclassified), offset, nil
}

// emit prints the offset line (when one was discovered) and the rows.
func (t *Transcriber) emit(rows []text.TextChunk, offset int) error {
	w := t.opts.writer
	if offset >= 0 {
		if _, err := fmt.Fprintf(w, "Superscript offset: %d\n", offset); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row.Text); err != nil {
			return err
		}
	}
	return nil
}
