package lexer

import (
	"github.com/ava12/prooftrace/source"
)

// Type identifies a token class.
type Type int

const (
	EOF Type = iota
	Number
	Symbol
	Comma     // ,
	Dot       // .
	Colon     // :
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Lt        // <
	Gt        // >
	Turnstile // |-
	Pipe      // |
	Not       // not
	And       // and
	Or        // or
	Imp       // =>
	Iff       // <=>
	Eq        // =
	Exists    // #
	Bang      // !
	Forall    // forall
	Forall2   // forall2
	Hyp       // Hyp
	Fin       // FIN
)

var typeNames = [...]string{
	"end of input", "number", "symbol",
	"\",\"", "\".\"", "\":\"", "\"(\"", "\")\"", "\"[\"", "\"]\"", "\"<\"", "\">\"",
	"\"|-\"", "\"|\"",
	"\"not\"", "\"and\"", "\"or\"", "\"=>\"", "\"<=>\"", "\"=\"",
	"\"#\"", "\"!\"", "\"forall\"", "\"forall2\"", "\"Hyp\"", "\"FIN\"",
}

func (t Type) String() string {
	return typeNames[t]
}

// Token is one lexeme with its position in the source.
type Token struct {
	tokenType Type
	text      string
	source    *source.Source
	line, col int
}

// SourcePos provides the position a token is created at.
type SourcePos interface {
	Source() *source.Source
	Line() int
	Col() int
}

func NewToken(tokenType Type, text string, sp SourcePos) *Token {
	if sp == nil {
		return &Token{tokenType: tokenType, text: text}
	}
	return &Token{tokenType, text, sp.Source(), sp.Line(), sp.Col()}
}

func (t *Token) Type() Type {
	return t.tokenType
}

// Text returns the matched lexeme, empty for the EOF token.
func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}
