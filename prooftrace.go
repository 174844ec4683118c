/*
Package prooftrace parses the textual proof-trace format emitted by the
krt predicate-logic prover. A trace is a sequence of rule-application
statements, each pairing a bracketed rule descriptor with a goal,
sequent, or finiteness side condition.

Consists of subpackages:
  - source: defines source buffer with position tracking used by lexer;
  - lexer: lexical analyzer for the trace token set;
  - term: expression, predicate, sequent, and rule-record types;
  - parser: precedence-climbing parser producing term values;
  - trace: line driver reading whole trace files;
  - cmd/tracedump: console utility dumping parsed traces as text, JSON, or YAML.

This layer is purely syntactic: no free-variable, arity, or
alpha-equivalence checks are performed. Downstream derivation checking
is a separate concern.
*/
package prooftrace

import (
	"fmt"
)

// Base code for parser errors. Individual codes are defined in the
// parser package.
const SyntaxErrors = 101

// Error is the error type returned by all prooftrace subpackages.
// Message already includes the source name and position when those are
// known; SourceName, Line, and Col carry the same data in structured
// form (empty string and zeros otherwise). Line and Col are 1-based.
type Error struct {
	Code       int
	Message    string
	SourceName string
	Line       int
	Col        int
}

func (e *Error) Error() string {
	return e.Message
}

// SourcePos supplies source name and position for error construction.
// Implemented by source.Pos and lexer.Token.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// NewError creates an Error. The position is appended to the message
// when name, line, and col are all set.
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// FormatError creates an Error carrying no position. msg is a
// fmt.Sprintf format when params are given.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos is FormatError with the position taken from pos,
// which must not be nil.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
