// Package trace is the line driver: it reads a whole trace source and
// returns the parsed rule-application records in file order.
//
// Semantics are all-or-nothing. A partial record list is not useful to
// a downstream derivation checker, so no error recovery is attempted:
// the first syntax error aborts the file and no records are returned.
// Failure causes stay distinguishable for the caller: an unreadable
// file surfaces the *fs.PathError from the os package, a malformed
// file surfaces the *prooftrace.Error with line, column, and the
// offending lexeme.
package trace

import (
	"io"
	"os"

	"github.com/ava12/prooftrace/parser"
	"github.com/ava12/prooftrace/source"
	"github.com/ava12/prooftrace/term"
)

// Read parses every statement in src, in order.
func Read(src *source.Source) ([]term.Line, error) {
	p := parser.New(src)
	var lines []term.Line
	for {
		ln, e := p.ParseLine()
		if e != nil {
			return nil, e
		}
		if ln == nil {
			return lines, nil
		}
		lines = append(lines, *ln)
	}
}

// ReadString parses a trace given as a string.
func ReadString(name, content string) ([]term.Line, error) {
	return Read(source.New(name, []byte(content)))
}

// ReadBytes parses a trace given as a byte slice.
func ReadBytes(name string, content []byte) ([]term.Line, error) {
	return Read(source.New(name, content))
}

// ReadFile opens and parses the named trace file. The file handle is
// released on every exit path.
func ReadFile(name string) ([]term.Line, error) {
	f, e := os.Open(name)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	content, e := io.ReadAll(f)
	if e != nil {
		return nil, e
	}
	return Read(source.New(name, content))
}
