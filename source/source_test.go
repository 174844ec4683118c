package source

import (
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{-1, 1, 1},
			{100, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"[R]\n<p>\n": {
			{0, 1, 1},
			{1, 1, 2},
			{2, 1, 3},
			{3, 1, 4},
			{4, 2, 1},
			{6, 2, 3},
			{7, 2, 4},
			{8, 3, 1},
			{4, 2, 1},
			{0, 1, 1},
		},
	}

	for text, results := range samples {
		src := New("", []byte(text))
		for _, res := range results {
			l, c := src.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q, pos %d: expected line %d col %d, got line %d col %d",
					text, res.pos, res.line, res.col, l, c)
			}
		}
	}
}

func TestSourceLineColRunes(t *testing.T) {
	// columns count runes, not bytes
	src := New("", []byte("№1\n№2"))
	l, c := src.LineCol(len("№"))
	if l != 1 || c != 2 {
		t.Fatalf("expected line 1 col 2, got line %d col %d", l, c)
	}
	l, c = src.LineCol(len("№1\n№"))
	if l != 2 || c != 2 {
		t.Fatalf("expected line 2 col 2, got line %d col %d", l, c)
	}
}

func TestPos(t *testing.T) {
	src := New("sample", []byte("ab\ncd"))
	p := NewPos(src, 4)
	if p.SourceName() != "sample" || p.Pos() != 4 || p.Line() != 2 || p.Col() != 2 {
		t.Fatalf("unexpected pos: %q, %d, %d, %d", p.SourceName(), p.Pos(), p.Line(), p.Col())
	}

	empty := Pos{}
	if empty.SourceName() != "" {
		t.Fatalf("expected empty source name, got %q", empty.SourceName())
	}
}
