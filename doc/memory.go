package doc

import (
	"fmt"

	"github.com/pagetext/pagetext/contentstream"
	"github.com/pagetext/pagetext/core"
)

// Memory is an in-memory Document built programmatically. Pages hold raw
// content stream source; fonts and indirect objects are plain maps.
type Memory struct {
	pages   []memoryPage
	objects map[core.Ref]core.Object
}

type memoryPage struct {
	fonts   map[string]core.Dict
	content []byte
}

// NewMemory creates an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{objects: make(map[core.Ref]core.Object)}
}

// AddPage appends a page with the given font resources and content stream
// source, returning its handle.
func (m *Memory) AddPage(fonts map[string]core.Dict, content []byte) Page {
	m.pages = append(m.pages, memoryPage{fonts: fonts, content: content})
	return Page(len(m.pages) - 1)
}

// AddObject registers an indirect object under ref.
func (m *Memory) AddObject(ref core.Ref, obj core.Object) {
	m.objects[ref] = obj
}

// Pages returns handles for all pages in insertion order.
func (m *Memory) Pages() []Page {
	pages := make([]Page, len(m.pages))
	for i := range pages {
		pages[i] = Page(i)
	}
	return pages
}

// PageFonts returns the page's font resource dictionaries.
func (m *Memory) PageFonts(p Page) (map[string]core.Dict, error) {
	if int(p) < 0 || int(p) >= len(m.pages) {
		return nil, fmt.Errorf("no such page %d", p)
	}
	return m.pages[p].fonts, nil
}

// ResolveReference looks up a registered indirect object.
func (m *Memory) ResolveReference(ref core.Ref) (core.Object, error) {
	obj, ok := m.objects[ref]
	if !ok {
		return nil, fmt.Errorf("object %s not found", ref)
	}
	return obj, nil
}

// PageContents parses the page's content stream source into operations.
func (m *Memory) PageContents(p Page) ([]contentstream.Operation, error) {
	if int(p) < 0 || int(p) >= len(m.pages) {
		return nil, fmt.Errorf("no such page %d", p)
	}
	ops, err := contentstream.NewParser(m.pages[p].content).Parse()
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", p, err)
	}
	return ops, nil
}
