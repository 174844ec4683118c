package parser

import (
	"github.com/ava12/prooftrace"
	"github.com/ava12/prooftrace/lexer"
)

// Error codes used by parser:
const (
	ErrUnexpectedToken = iota + prooftrace.SyntaxErrors
	ErrUnexpectedEof
	ErrPredicateExpected
	ErrExpressionExpected
	ErrBadNumber
)

func unexpectedTokenError(t *lexer.Token) *prooftrace.Error {
	if t.Type() == lexer.EOF {
		return prooftrace.FormatErrorPos(t, ErrUnexpectedEof, "unexpected end of input")
	}
	return prooftrace.FormatErrorPos(t, ErrUnexpectedToken, "unexpected %q", t.Text())
}

func expectedTokenError(t *lexer.Token, expected lexer.Type) *prooftrace.Error {
	if t.Type() == lexer.EOF {
		return prooftrace.FormatErrorPos(t, ErrUnexpectedEof, "unexpected end of input, expecting %s", expected)
	}
	return prooftrace.FormatErrorPos(t, ErrUnexpectedToken, "unexpected %q, expecting %s", t.Text(), expected)
}

func predicateExpectedError(t *lexer.Token) *prooftrace.Error {
	return prooftrace.FormatErrorPos(t, ErrPredicateExpected, "expecting a predicate, got a tuple near %q", t.Text())
}

func expressionExpectedError(t *lexer.Token) *prooftrace.Error {
	return prooftrace.FormatErrorPos(t, ErrExpressionExpected, "expecting an expression near %q", t.Text())
}

func badNumberError(t *lexer.Token) *prooftrace.Error {
	return prooftrace.FormatErrorPos(t, ErrBadNumber, "number %q out of range", t.Text())
}
