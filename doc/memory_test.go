package doc

import (
	"testing"

	"github.com/pagetext/pagetext/core"
)

func TestMemoryPages(t *testing.T) {
	m := NewMemory()
	if len(m.Pages()) != 0 {
		t.Errorf("empty document has pages: %v", m.Pages())
	}

	p1 := m.AddPage(nil, []byte("BT ET"))
	p2 := m.AddPage(nil, []byte("BT ET"))
	pages := m.Pages()
	if len(pages) != 2 || pages[0] != p1 || pages[1] != p2 {
		t.Errorf("Pages = %v, want [%d %d]", pages, p1, p2)
	}
}

func TestMemoryPageFonts(t *testing.T) {
	m := NewMemory()
	fonts := map[string]core.Dict{"F1": {"Encoding": core.Name("WinAnsiEncoding")}}
	p := m.AddPage(fonts, []byte("BT ET"))

	got, err := m.PageFonts(p)
	if err != nil {
		t.Fatalf("PageFonts: %v", err)
	}
	if _, ok := got["F1"]; !ok {
		t.Errorf("PageFonts = %v, missing F1", got)
	}

	if _, err := m.PageFonts(Page(99)); err == nil {
		t.Error("expected error for bad page handle")
	}
}

func TestMemoryResolveReference(t *testing.T) {
	m := NewMemory()
	ref := core.Ref{Number: 5}
	m.AddObject(ref, core.Int(42))

	obj, err := m.ResolveReference(ref)
	if err != nil {
		t.Fatalf("ResolveReference: %v", err)
	}
	if obj != core.Int(42) {
		t.Errorf("object = %v", obj)
	}

	if _, err := m.ResolveReference(core.Ref{Number: 6}); err == nil {
		t.Error("expected error for unknown reference")
	}
}

func TestMemoryPageContents(t *testing.T) {
	m := NewMemory()
	p := m.AddPage(nil, []byte("BT (Hi) Tj ET"))

	ops, err := m.PageContents(p)
	if err != nil {
		t.Fatalf("PageContents: %v", err)
	}
	if len(ops) != 3 || ops[1].Operator != "Tj" {
		t.Errorf("ops = %v", ops)
	}

	bad := m.AddPage(nil, []byte("(unclosed"))
	if _, err := m.PageContents(bad); err == nil {
		t.Error("expected parse error")
	}
}
