// Package source defines an immutable source buffer with byte offset
// to line/column mapping used by the lexer and for error reporting.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source holds the complete content of one trace source.
// Line starts are indexed once at construction, position lookups
// never rescan the content.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a Source for the given name and content.
// The content slice is not copied and must not be modified afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	s.lineStarts = make([]int, 1, bytes.Count(content, []byte{'\n'})+1)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts a byte offset to 1-based line and column numbers.
// Columns count runes, not bytes. Offsets outside the content are
// clamped to its bounds.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return i + 1, utf8.RuneCount(s.content[s.lineStarts[i]:pos]) + 1
}

// Pos is a fixed position in a Source.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos captures the position at the given byte offset.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns the name of the source or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
