package text

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pagetext/pagetext/contentstream"
	"github.com/pagetext/pagetext/core"
	"github.com/pagetext/pagetext/font"
)

// winAnsiCache builds a cache with a single table-less WinAnsi font F1.
func winAnsiCache(t *testing.T) *font.Cache {
	t.Helper()
	cache := font.NewCache()
	dict := core.Dict{"Encoding": core.Name("WinAnsiEncoding")}
	if err := cache.Add("F1", dict, func(core.Ref) (core.Object, error) {
		return nil, errors.New("unused")
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return cache
}

func parseOps(t *testing.T, src string) []contentstream.Operation {
	t.Helper()
	ops, err := contentstream.NewParser([]byte(src)).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return ops
}

func TestRunBasicPage(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	err := in.Run(parseOps(t, `BT /F1 12 Tf 1 0 0 1 10 100 Tm (Hi) Tj ET`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []TextChunk{{Text: "Hi", X: 10, Y: 100}}
	if diff := cmp.Diff(want, in.Chunks()); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMultipleBlocks(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	src := `BT /F1 12 Tf 1 0 0 1 10 100 Tm (A) Tj ET
BT 1 0 0 1 50 100 Tm (B) Tj ET
BT 1 0 0 1 10 80 Tm (C) Tj ET`
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []TextChunk{
		{Text: "A", X: 10, Y: 100},
		{Text: "B", X: 50, Y: 100},
		{Text: "C", X: 10, Y: 80},
	}
	if diff := cmp.Diff(want, in.Chunks()); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFontPersistsAcrossBlocks(t *testing.T) {
	// Tf in the first block still governs the second: font selection is
	// part of interpreter state, not block state.
	in := NewInterpreter(winAnsiCache(t))
	src := `BT /F1 12 Tf (A) Tj ET BT (B) Tj ET`
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.Chunks()) != 2 || in.Chunks()[1].Text != "B" {
		t.Errorf("chunks = %v", in.Chunks())
	}
}

func TestRunRealMatrixTruncates(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	src := `BT /F1 12 Tf 1 0 0 1 10.9 99.2 Tm (Hi) Tj ET`
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := in.Chunks()[0]
	if got.X != 10 || got.Y != 99 {
		t.Errorf("position = (%d, %d), want (10, 99)", got.X, got.Y)
	}
}

func TestRunShowTextOutsideBlockIgnored(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	// Tj before BT: ignored even though no font is selected.
	src := `(stray) Tj BT /F1 12 Tf (ok) Tj ET`
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.Chunks()) != 1 || in.Chunks()[0].Text != "ok" {
		t.Errorf("chunks = %v", in.Chunks())
	}
}

func TestRunUnknownOperatorsIgnored(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	src := `q 0.5 0 0 0.5 0 0 cm BT /F1 12 Tf 2 Tr (Hi) Tj ET Q`
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.Chunks()) != 1 || in.Chunks()[0].Text != "Hi" {
		t.Errorf("chunks = %v", in.Chunks())
	}
}

func TestRunNoFontSelected(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	err := in.Run(parseOps(t, `BT (Hi) Tj ET`))
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("err = %v, want ErrNoFont", err)
	}
	if len(in.Chunks()) != 0 {
		t.Errorf("chunks = %v, want none emitted before the failure", in.Chunks())
	}
}

func TestRunUnresolvedFont(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	err := in.Run(parseOps(t, `BT /F9 12 Tf (Hi) Tj ET`))
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("err = %v, want ErrNoFont", err)
	}
}

func TestRunUnresolvedFontWithoutShowTextIsFine(t *testing.T) {
	// Tf alone never triggers a lookup.
	in := NewInterpreter(winAnsiCache(t))
	if err := in.Run(parseOps(t, `BT /F9 12 Tf ET`)); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunMalformedMatrix(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"name operand", `BT /F1 12 Tf 1 0 0 1 /x 100 Tm ET`},
		{"string operand", `BT 1 0 0 1 10 (y) Tm ET`},
		{"too few operands", `BT 1 0 1 10 100 Tm ET`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInterpreter(winAnsiCache(t)).Run(parseOps(t, tt.src))
			if !errors.Is(err, ErrBadMatrix) {
				t.Errorf("err = %v, want ErrBadMatrix", err)
			}
		})
	}
}

func TestRunStateResetsBetweenPages(t *testing.T) {
	in := NewInterpreter(winAnsiCache(t))
	if err := in.Run(parseOps(t, `BT /F1 12 Tf 1 0 0 1 10 100 Tm (A) Tj ET`)); err != nil {
		t.Fatalf("page 1: %v", err)
	}
	// Second page: position resets to (0,0), but the cache persists so
	// F1 needs reselecting only because fontID is page state.
	err := in.Run(parseOps(t, `BT (B) Tj ET`))
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("err = %v, want ErrNoFont after page reset", err)
	}

	in2 := NewInterpreter(winAnsiCache(t))
	if err := in2.Run(parseOps(t, `BT /F1 12 Tf (A) Tj ET`)); err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if err := in2.Run(parseOps(t, `BT /F1 12 Tf (B) Tj ET`)); err != nil {
		t.Fatalf("page 2: %v", err)
	}
	want := []TextChunk{{Text: "A"}, {Text: "B"}}
	if diff := cmp.Diff(want, in2.Chunks()); diff != "" {
		t.Errorf("chunks accumulate across pages (-want +got):\n%s", diff)
	}
}

func TestRunDecodesThroughToUnicode(t *testing.T) {
	cache := font.NewCache()
	dict := core.Dict{
		"ToUnicode": &core.Stream{
			Dict: core.Dict{},
			Data: []byte("2 beginbfchar <0001> <0048> <0002> <0069> endbfchar"),
		},
	}
	if err := cache.Add("F1", dict, func(core.Ref) (core.Object, error) {
		return nil, errors.New("unused")
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	in := NewInterpreter(cache)
	src := "BT /F1 12 Tf <00010002> Tj ET"
	if err := in.Run(parseOps(t, src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := in.Chunks()[0].Text; got != "Hi" {
		t.Errorf("text = %q, want %q", got, "Hi")
	}
}

func TestTextChunkLess(t *testing.T) {
	tests := []struct {
		a, b TextChunk
		want bool
	}{
		{TextChunk{Y: 1}, TextChunk{Y: 2}, true},
		{TextChunk{Y: 2}, TextChunk{Y: 1}, false},
		{TextChunk{Y: 1, X: 1}, TextChunk{Y: 1, X: 2}, true},
		{TextChunk{Y: 1, X: 2}, TextChunk{Y: 1, X: 2}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("(%v).Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
